package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Crack.Top != nil || cfg.Cipher.Alphabet != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[cipher]
alphabet = "ZEBRACDFGHIJKLMNOPQSTUVWXY"

[crack]
top = 5
remote = false
remote-timeout-ms = 250

[puzzle]
ciphers = ["caesar", "atbash"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cipher.Alphabet == nil || *cfg.Cipher.Alphabet != "ZEBRACDFGHIJKLMNOPQSTUVWXY" {
		t.Fatalf("alphabet = %v", cfg.Cipher.Alphabet)
	}
	if cfg.Crack.Top == nil || *cfg.Crack.Top != 5 {
		t.Fatalf("top = %v", cfg.Crack.Top)
	}
	if cfg.Crack.Remote == nil || *cfg.Crack.Remote {
		t.Fatalf("remote = %v", cfg.Crack.Remote)
	}
	if cfg.Crack.RemoteTimeoutMs == nil || *cfg.Crack.RemoteTimeoutMs != 250 {
		t.Fatalf("remote-timeout-ms = %v", cfg.Crack.RemoteTimeoutMs)
	}
	if cfg.Crack.Workers != nil {
		t.Fatalf("workers should be unset")
	}
	if cfg.Puzzle.Ciphers == nil || len(*cfg.Puzzle.Ciphers) != 2 {
		t.Fatalf("ciphers = %v", cfg.Puzzle.Ciphers)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[crack]\ntopp = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("template should decode: %v", err)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "codeclub", "config.toml") {
		t.Fatalf("config path = %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "codeclub", "codeclub.db") {
		t.Fatalf("db path = %q", got)
	}
	if got := DefaultKeywordListPath(); got != filepath.Join("/data", "codeclub", "keywords.txt") {
		t.Fatalf("keyword path = %q", got)
	}
}
