package helpers

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/discorder/discorder/internal/config"
	"github.com/discorder/discorder/internal/webhook"
)

// NewLogger creates the stderr logger; verbose enables debug records
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// BuildSubmission selects the submission mode from validated parameters:
// text when set, the file when set, otherwise everything read from stdin.
func BuildSubmission(params config.Params, stdin io.Reader, logger *slog.Logger) (webhook.Submission, error) {
	if err := params.Validate(); err != nil {
		return webhook.Submission{}, err
	}

	switch {
	case params.Text != nil:
		return webhook.TextSubmission(*params.Text), nil
	case params.File != nil:
		path, err := config.ExpandHome(*params.File)
		if err != nil {
			return webhook.Submission{}, fmt.Errorf("invalid file path: %w", err)
		}
		return webhook.FileSubmission(path)
	default:
		if isTerminal(stdin) {
			logger.Info("reading message from stdin, press Ctrl-D to send")
		}
		return webhook.StdinSubmission(stdin)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
