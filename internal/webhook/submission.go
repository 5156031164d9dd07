package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// StdinFilename is the attachment name used for content read from stdin
const StdinFilename = "stdin.txt"

// Mode selects how a submission is encoded
type Mode int

const (
	ModeText Mode = iota
	ModeFile
	ModeStdin
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeFile:
		return "file"
	case ModeStdin:
		return "stdin"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Submission is a single message to deliver
type Submission struct {
	Mode     Mode
	Text     string
	Filename string
	Data     []byte
}

// message is the JSON body for text submissions
type message struct {
	Content string `json:"content"`
}

// TextSubmission creates a plain text message
func TextSubmission(text string) Submission {
	return Submission{Mode: ModeText, Text: text}
}

// FileSubmission reads the file at path for upload under its base name
func FileSubmission(path string) (Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Submission{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Submission{Mode: ModeFile, Filename: filepath.Base(path), Data: data}, nil
}

// StdinSubmission reads r to EOF and uploads it as StdinFilename
func StdinSubmission(r io.Reader) (Submission, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Submission{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return Submission{Mode: ModeStdin, Filename: StdinFilename, Data: data}, nil
}

// encode returns the request body and its content type
func (s Submission) encode() ([]byte, string, error) {
	switch s.Mode {
	case ModeText:
		body, err := json.Marshal(message{Content: s.Text})
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal message: %w", err)
		}
		return body, "application/json", nil
	case ModeFile, ModeStdin:
		return s.encodeMultipart()
	default:
		return nil, "", fmt.Errorf("unknown submission mode: %s", s.Mode)
	}
}

func (s Submission) encodeMultipart() ([]byte, string, error) {
	filename := s.Filename
	if filename == "" {
		filename = StdinFilename
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(s.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write file part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
