package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfigPath names the environment variable that overrides the config path
	EnvConfigPath = "DISCORDER_CONFIG"

	appName = "discorder"
)

// DefaultSearchPaths returns the ordered list of candidate config files
// consulted when neither DISCORDER_CONFIG nor --config is given.
//
// Precedence:
//  1. ./discorder.yml, ./discorder.yaml
//  2. <user config dir>/discorder/discorder.yml, .yaml
//  3. legacy TOML documents in the same two locations
func DefaultSearchPaths() []string {
	dir := userConfigDir()
	return []string{
		"./" + appName + ".yml",
		"./" + appName + ".yaml",
		filepath.Join(dir, appName, appName+".yml"),
		filepath.Join(dir, appName, appName+".yaml"),
		"./" + appName + ".toml",
		filepath.Join(dir, appName, appName+".toml"),
	}
}

// userConfigDir falls back to ~/.config, which is expanded when the
// candidate is checked.
func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "~/.config"
}

// ExpandHome replaces a leading ~ with the user's home directory.
// The path is otherwise used as given.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is empty")
	}
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// exists reports whether a candidate is present on disk. Stat failures other
// than not-exist count as present so that Load surfaces them.
func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return !errors.Is(err, os.ErrNotExist)
	}
	return !info.IsDir()
}
