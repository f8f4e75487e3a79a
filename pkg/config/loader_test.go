package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brendandebeasi/tmux-up/pkg/paths"
)

func resetPaths(t *testing.T) {
	t.Helper()
	paths.ResetForTest()
	t.Cleanup(paths.ResetForTest)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Tmux != "tmux" || cfg.Shell != "/bin/sh" || cfg.Socket != "" {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `tmux: /usr/local/bin/tmux
socket: work
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Tmux != "/usr/local/bin/tmux" {
		t.Errorf("Tmux = %q", cfg.Tmux)
	}
	if cfg.Socket != "work" {
		t.Errorf("Socket = %q", cfg.Socket)
	}
	if cfg.Shell != "/bin/sh" {
		t.Errorf("Shell = %q, want default", cfg.Shell)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tmux: [\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() expected error for malformed yaml")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMUX_UP_CONFIG_DIR", dir)
	resetPaths(t)

	if got, want := DefaultConfigPath(), filepath.Join(dir, "config.yaml"); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
