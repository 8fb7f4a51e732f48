package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/envctx/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.ConfigFormatVersion != "" && cfg.ConfigFormatVersion != domain.ConfigFormatVersion {
		return fmt.Errorf("config_format_version %s is not supported (want %s)", cfg.ConfigFormatVersion, domain.ConfigFormatVersion)
	}
	return validatePreferences(cfg.Preferences)
}

func validatePreferences(prefs domain.Preferences) error {
	var errs []error
	switch strings.ToLower(prefs.DefaultEnvironments) {
	case "", "all", "test", "todo":
	default:
		errs = append(errs, fmt.Errorf("preferences.default_environments must be all|test|todo, got %s", prefs.DefaultEnvironments))
	}
	if _, err := domain.ParseTagMode(prefs.TagMode); err != nil {
		errs = append(errs, fmt.Errorf("preferences.tag_mode: %w", err))
	}
	if _, err := ParseOutput(prefs.Output); err != nil {
		errs = append(errs, fmt.Errorf("preferences.output: %w", err))
	}
	return errors.Join(errs...)
}

// ParseOutput parses an output format name; empty selects text.
func ParseOutput(raw string) (domain.OutputFormat, error) {
	switch domain.OutputFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", domain.OutputText:
		return domain.OutputText, nil
	case domain.OutputJSON:
		return domain.OutputJSON, nil
	case domain.OutputYAML:
		return domain.OutputYAML, nil
	default:
		return "", fmt.Errorf("output must be text|json|yaml, got %s", raw)
	}
}
