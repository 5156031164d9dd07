package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/discorder/discorder/internal/webhook"
)

// Status is the terminal state of a submission
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Result describes the outcome of one webhook submission
type Result struct {
	Status     Status
	StatusCode int    // HTTP status, 0 when no response was received
	Detail     string // Response body or transport error
}

// Succeeded reports whether the submission was accepted
func (r *Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

// FromError classifies the error returned by webhook.Client.Send
func FromError(err error) *Result {
	if err == nil {
		return &Result{Status: StatusSuccess}
	}

	var statusErr *webhook.StatusError
	if errors.As(err, &statusErr) {
		detail := statusErr.Status
		if body := strings.TrimSpace(statusErr.Body); body != "" {
			detail = fmt.Sprintf("%s %s", detail, body)
		}
		return &Result{
			Status:     StatusFailed,
			StatusCode: statusErr.StatusCode,
			Detail:     detail,
		}
	}

	return &Result{Status: StatusFailed, Detail: err.Error()}
}

// Line renders the single human-readable status line without styling
func (r *Result) Line() string {
	if r.Succeeded() {
		return "Success!"
	}
	if r.Detail == "" {
		return "Failed!"
	}
	return "Failed! " + singleLine(r.Detail)
}

// Print writes the status line to w, colored when w is a terminal
func Print(w io.Writer, r *Result) error {
	renderer := lipgloss.NewRenderer(w)
	style := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	if r.Succeeded() {
		style = style.Foreground(lipgloss.Color("10"))
	}

	line := r.Line()
	head, rest, _ := strings.Cut(line, " ")
	if rest != "" {
		rest = " " + rest
	}
	_, err := fmt.Fprintln(w, style.Render(head)+rest)
	return err
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}
