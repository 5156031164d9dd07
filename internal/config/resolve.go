package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Resolver determines the effective invocation parameters
type Resolver struct {
	// EnvVar names the environment variable holding a config path override
	EnvVar string
	// SearchPaths are consulted in order when no path is given explicitly
	SearchPaths []string
	// Getenv looks up environment variables (default: os.Getenv)
	Getenv func(string) string

	logger *slog.Logger
}

// NewResolver creates a resolver with the default environment variable and
// search list
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = discardLogger
	}
	return &Resolver{
		EnvVar:      EnvConfigPath,
		SearchPaths: DefaultSearchPaths(),
		Getenv:      os.Getenv,
		logger:      logger,
	}
}

// Locate resolves the configuration path.
//
// Precedence:
//  1. the environment variable override
//  2. explicit argument (--config)
//  3. first existing entry of SearchPaths
//
// An empty string means no config file applies.
func (r *Resolver) Locate(explicit string) (string, error) {
	if v := strings.TrimSpace(r.getenv(r.EnvVar)); v != "" {
		path, err := ExpandHome(v)
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", r.EnvVar, err)
		}
		r.log().Debug("config path from environment", "var", r.EnvVar, "path", path)
		return path, nil
	}

	if v := strings.TrimSpace(explicit); v != "" {
		path, err := ExpandHome(v)
		if err != nil {
			return "", fmt.Errorf("expand config path: %w", err)
		}
		r.log().Debug("config path from flag", "path", path)
		return path, nil
	}

	for _, candidate := range r.SearchPaths {
		path, err := ExpandHome(candidate)
		if err != nil {
			// Only fatal when the candidate would actually be used
			r.log().Debug("skipping config candidate", "path", candidate, "error", err)
			continue
		}
		if exists(path) {
			r.log().Debug("config path discovered", "path", path)
			return path, nil
		}
	}

	r.log().Debug("no config file found", "candidates", len(r.SearchPaths))
	return "", nil
}

// Resolve locates and loads the config document and merges it under the
// command-line values. A missing config file is not an error.
func (r *Resolver) Resolve(cli Params, explicit string) (Resolved, error) {
	path, err := r.Locate(explicit)
	if err != nil {
		return Resolved{}, err
	}
	if path == "" {
		return Resolved{Params: cli}, nil
	}

	doc, err := Load(path)
	if err != nil {
		return Resolved{}, err
	}
	if doc == nil {
		r.log().Debug("config file not present, ignoring", "path", path)
		return Resolved{Params: cli}, nil
	}

	return Resolved{
		Params:     Merge(cli, doc.Params),
		ConfigPath: doc.Path,
	}, nil
}

func (r *Resolver) log() *slog.Logger {
	if r.logger == nil {
		return discardLogger
	}
	return r.logger
}

func (r *Resolver) getenv(key string) string {
	if key == "" {
		return ""
	}
	if r.Getenv == nil {
		return os.Getenv(key)
	}
	return r.Getenv(key)
}
