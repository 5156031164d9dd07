package webhook

import (
	"fmt"
	"strings"
)

// StatusError is returned when the webhook answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "webhook request failed"
	}
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("status %d", e.StatusCode)
	}
	if body := strings.TrimSpace(e.Body); body != "" {
		return fmt.Sprintf("%s: %s", status, body)
	}
	return status
}
