package config

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Document is a parsed config file
type Document struct {
	Path   string
	Params Params
}

// Load reads and parses the config document at path.
// It returns nil and no error when the file does not exist; a file that
// exists but cannot be read or parsed is an error.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	doc := &Document{Path: path}
	if err := decoderFor(path)(data, &doc.Params); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return doc, nil
}
