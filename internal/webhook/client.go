package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// maxResponseBody bounds how much of a response is kept for diagnostics
const maxResponseBody = 4096

// Client represents a webhook HTTP client
type Client struct {
	httpClient *http.Client
	config     *Config
	logger     *slog.Logger
}

// NewClient creates a new webhook client. A nil httpClient uses a client with
// Go's default transport and no timeout.
func NewClient(config *Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: httpClient,
		config:     config,
		logger:     logger,
	}
}

// Send delivers the submission with exactly one POST request.
// A non-2xx response yields a *StatusError; transport failures are wrapped.
func (c *Client) Send(ctx context.Context, sub Submission) error {
	body, contentType, err := sub.encode()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", stripURL(err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.config.UserAgent)

	c.logger.Debug("sending webhook",
		"mode", sub.Mode.String(),
		"filename", sub.Filename,
		"bytes", len(body),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", stripURL(err))
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	// Drain the remainder to reuse the connection
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debug("webhook response", "status", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(data),
		}
	}
	return nil
}

// stripURL drops the URL from a *url.Error, since webhook URLs carry their token
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
