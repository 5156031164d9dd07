package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde prefix", in: "~/discorder.yml", want: filepath.Join(home, "discorder.yml")},
		{name: "bare tilde", in: "~", want: home},
		{name: "nested", in: "~/.config/discorder/discorder.yaml", want: filepath.Join(home, ".config", "discorder", "discorder.yaml")},
		{name: "relative path untouched", in: "./discorder.yml", want: "./discorder.yml"},
		{name: "absolute path untouched", in: "/etc/discorder.yml", want: "/etc/discorder.yml"},
		{name: "tilde user form untouched", in: "~alice/discorder.yml", want: "~alice/discorder.yml"},
		{name: "surrounding whitespace kept", in: " notes.txt ", want: " notes.txt "},
		{name: "trailing whitespace kept after tilde", in: "~/a.yml ", want: filepath.Join(home, "a.yml ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			if err != nil {
				t.Fatalf("ExpandHome(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandHome_Errors(t *testing.T) {
	if _, err := ExpandHome(""); err == nil {
		t.Error("Expected error for empty path")
	}

	t.Setenv("HOME", "")
	if _, err := ExpandHome("~/discorder.yml"); err == nil {
		t.Error("Expected error when home directory is unknown")
	}
	// Paths without a tilde never need the home directory
	if _, err := ExpandHome("./discorder.yml"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestDefaultSearchPaths(t *testing.T) {
	dir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	paths := DefaultSearchPaths()

	want := []string{
		"./discorder.yml",
		"./discorder.yaml",
		filepath.Join(dir, "discorder", "discorder.yml"),
		filepath.Join(dir, "discorder", "discorder.yaml"),
		"./discorder.toml",
		filepath.Join(dir, "discorder", "discorder.toml"),
	}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestLocate_Precedence(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yml")
	flagPath := filepath.Join(dir, "flag.yml")
	searchPath := filepath.Join(dir, "search.yml")
	for _, p := range []string{envPath, flagPath, searchPath} {
		writeFile(t, p, "webhook: https://example.com\n")
	}

	tests := []struct {
		name     string
		env      string
		explicit string
		want     string
	}{
		{name: "env wins over flag and search list", env: envPath, explicit: flagPath, want: envPath},
		{name: "flag wins over search list", explicit: flagPath, want: flagPath},
		{name: "search list when nothing explicit", want: searchPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(nil)
			r.Getenv = envMap(map[string]string{EnvConfigPath: tt.env})
			r.SearchPaths = []string{searchPath}

			got, err := r.Locate(tt.explicit)
			if err != nil {
				t.Fatalf("Locate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Locate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocate_SearchOrder(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yml")
	second := filepath.Join(dir, "second.yaml")
	third := filepath.Join(dir, "third.yml")
	writeFile(t, second, "")
	writeFile(t, third, "")

	r := NewResolver(nil)
	r.Getenv = envMap(nil)
	r.SearchPaths = []string{missing, second, third}

	got, err := r.Locate("")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != second {
		t.Errorf("Locate() = %q, want first existing candidate %q", got, second)
	}
}

func TestLocate_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	asDir := filepath.Join(dir, "discorder.yml")
	if err := os.Mkdir(asDir, 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(nil)
	r.Getenv = envMap(nil)
	r.SearchPaths = []string{asDir}

	got, err := r.Locate("")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != "" {
		t.Errorf("Locate() = %q, want no config", got)
	}
}

func TestLocate_NoConfig(t *testing.T) {
	dir := t.TempDir()

	r := NewResolver(nil)
	r.Getenv = envMap(nil)
	r.SearchPaths = []string{filepath.Join(dir, "a.yml"), filepath.Join(dir, "b.yaml")}

	got, err := r.Locate("")
	if err != nil {
		t.Fatalf("Expected no error when nothing exists, got %v", err)
	}
	if got != "" {
		t.Errorf("Locate() = %q, want empty", got)
	}
}

func TestLocate_ExpandsHomeBeforeExistenceCheck(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "discorder", "discorder.yaml"), "")

	r := NewResolver(nil)
	r.Getenv = envMap(nil)
	r.SearchPaths = []string{"~/.config/discorder/discorder.yml", "~/.config/discorder/discorder.yaml"}

	got, err := r.Locate("")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	want := filepath.Join(home, ".config", "discorder", "discorder.yaml")
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestLocate_EnvTildeExpanded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	r := NewResolver(nil)
	r.Getenv = envMap(map[string]string{EnvConfigPath: "~/custom.yml"})

	got, err := r.Locate("")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != filepath.Join(home, "custom.yml") {
		t.Errorf("Locate() = %q", got)
	}
}

func TestLocate_TrimsConfigPathInputs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	r := NewResolver(nil)
	r.Getenv = envMap(map[string]string{EnvConfigPath: "  ~/env.yml \n"})
	got, err := r.Locate("")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != filepath.Join(home, "env.yml") {
		t.Errorf("Locate() from env = %q", got)
	}

	r.Getenv = envMap(nil)
	got, err = r.Locate(" ~/flag.yml ")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != filepath.Join(home, "flag.yml") {
		t.Errorf("Locate() from flag = %q", got)
	}
}

func TestLocate_HomeFailure(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(dir, "discorder.yml")
	writeFile(t, fallback, "")
	t.Setenv("HOME", "")

	t.Run("unused candidate is skipped", func(t *testing.T) {
		r := NewResolver(nil)
		r.Getenv = envMap(nil)
		r.SearchPaths = []string{"~/discorder.yml", fallback}

		got, err := r.Locate("")
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if got != fallback {
			t.Errorf("Locate() = %q, want %q", got, fallback)
		}
	})

	t.Run("selected env path is fatal", func(t *testing.T) {
		r := NewResolver(nil)
		r.Getenv = envMap(map[string]string{EnvConfigPath: "~/discorder.yml"})

		_, err := r.Locate("")
		if err == nil {
			t.Fatal("Expected error when env path cannot be expanded")
		}
		if !strings.Contains(err.Error(), EnvConfigPath) {
			t.Errorf("Expected error to name %s, got: %v", EnvConfigPath, err)
		}
	})

	t.Run("selected flag path is fatal", func(t *testing.T) {
		r := NewResolver(nil)
		r.Getenv = envMap(nil)

		if _, err := r.Locate("~/discorder.yml"); err == nil {
			t.Fatal("Expected error when flag path cannot be expanded")
		}
	})
}
