package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/envctx/assets"
	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/pkg/filesystem"
	"github.com/doeshing/envctx/internal/ports"
)

// FileLoader loads YAML configuration from ~/.envctx/config.yaml (overridable via ENVCTX_CONFIG).
// A missing file yields the embedded defaults; the loader never writes.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// SetPath overrides the config file location.
func (l *FileLoader) SetPath(path string) {
	l.overridePath = path
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig()
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the config file location this loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(domain.ConfigPathEnvVar); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.ConfigDirName, domain.ConfigFileName)
}

// DefaultConfig decodes the embedded default configuration.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = domain.ConfigFormatVersion
	}
	if cfg.Preferences.DefaultEnvironments == "" {
		cfg.Preferences.DefaultEnvironments = "todo"
	}
	if cfg.Preferences.TagMode == "" {
		cfg.Preferences.TagMode = string(domain.TagModeStrict)
	}
	if cfg.Preferences.Output == "" {
		cfg.Preferences.Output = string(domain.OutputText)
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
