package config

import (
	"errors"
	"strings"
)

var (
	// ErrMissingWebhook is returned when no webhook URL could be resolved
	ErrMissingWebhook = errors.New("webhook URL is required (use --webhook or set webhook in the config file)")

	// ErrConflictingInput is returned when both text and file are supplied
	ErrConflictingInput = errors.New("please specify either text or file, not both")
)

// Params holds the invocation parameters. A nil field means "not supplied".
type Params struct {
	Webhook *string `yaml:"webhook" toml:"webhook"`
	Text    *string `yaml:"text" toml:"text"`
	File    *string `yaml:"file" toml:"file"`
}

// Resolved is the outcome of resolution: the merged parameters plus the
// config file that contributed to them, if any.
type Resolved struct {
	Params
	ConfigPath string
}

// String returns a pointer to s, for building Params literals.
func String(s string) *string {
	return &s
}

// Merge combines command-line values with config file values.
// A field supplied on the command line always wins.
func Merge(cli, file Params) Params {
	return Params{
		Webhook: pick(cli.Webhook, file.Webhook),
		Text:    pick(cli.Text, file.Text),
		File:    pick(cli.File, file.File),
	}
}

func pick(primary, fallback *string) *string {
	if primary != nil {
		return primary
	}
	return fallback
}

// Validate checks that the parameters describe a submittable message
func (p Params) Validate() error {
	if p.Webhook == nil || strings.TrimSpace(*p.Webhook) == "" {
		return ErrMissingWebhook
	}
	if p.Text != nil && p.File != nil {
		return ErrConflictingInput
	}
	return nil
}

// WebhookURL returns the webhook or an empty string
func (p Params) WebhookURL() string {
	if p.Webhook == nil {
		return ""
	}
	return strings.TrimSpace(*p.Webhook)
}
