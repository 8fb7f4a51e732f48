package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/envctx/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigFormatVersion != domain.ConfigFormatVersion {
		t.Errorf("format version = %q", cfg.ConfigFormatVersion)
	}
	if cfg.Preferences.DefaultEnvironments != "todo" {
		t.Errorf("default environments = %q, want todo", cfg.Preferences.DefaultEnvironments)
	}
	if cfg.Preferences.TagMode != string(domain.TagModeStrict) {
		t.Errorf("tag mode = %q, want strict", cfg.Preferences.TagMode)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("loader must not create %s", path)
	}
}

func TestLoadReadsFileAndHydrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "preferences:\n  default_environments: all\n  tag_mode: presence\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Preferences.DefaultEnvironments != "all" || cfg.Preferences.TagMode != "presence" {
		t.Fatalf("unexpected preferences %+v", cfg.Preferences)
	}
	if cfg.Preferences.Output != string(domain.OutputText) {
		t.Errorf("output = %q, want text", cfg.Preferences.Output)
	}
	if cfg.ConfigFormatVersion != domain.ConfigFormatVersion {
		t.Errorf("format version = %q", cfg.ConfigFormatVersion)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preferences: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathResolution(t *testing.T) {
	t.Setenv(domain.ConfigPathEnvVar, "/etc/envctx/config.yaml")

	if got := NewFileLoader("").Path(); got != "/etc/envctx/config.yaml" {
		t.Errorf("env override path = %s", got)
	}

	loader := NewFileLoader("/tmp/explicit.yaml")
	if got := loader.Path(); got != "/tmp/explicit.yaml" {
		t.Errorf("explicit path = %s", got)
	}
	loader.SetPath("/tmp/other.yaml")
	if got := loader.Path(); got != "/tmp/other.yaml" {
		t.Errorf("SetPath path = %s", got)
	}
}

func TestDefaultConfigMatchesEmbeddedAsset(t *testing.T) {
	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig() error = %v", err)
	}
	if cfg.Preferences.Output != "text" || cfg.Preferences.ProjectPath != "" {
		t.Fatalf("unexpected defaults %+v", cfg.Preferences)
	}
}
