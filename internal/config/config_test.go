package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Solve.Limit != nil || cfg.Dict.URL != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[solve]
limit = 5
format = "json"
timing = true

[dict]
url = "http://example.test/words.txt"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Solve.Limit == nil || *cfg.Solve.Limit != 5 {
		t.Fatalf("unexpected limit: %v", cfg.Solve.Limit)
	}
	if cfg.Solve.Format == nil || *cfg.Solve.Format != "json" {
		t.Fatalf("unexpected format: %v", cfg.Solve.Format)
	}
	if cfg.Solve.Timing == nil || !*cfg.Solve.Timing {
		t.Fatalf("unexpected timing: %v", cfg.Solve.Timing)
	}
	if cfg.Solve.Color != nil {
		t.Fatalf("expected color unset")
	}
	if cfg.Dict.URL == nil || *cfg.Dict.URL != "http://example.test/words.txt" {
		t.Fatalf("unexpected url: %v", cfg.Dict.URL)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[solve]\nlimt = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "blossom", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDictPath(); got != filepath.Join("/tmp/data", "blossom", "words_alpha.txt") {
		t.Fatalf("unexpected dict path %q", got)
	}
}
