package config_test

import (
	"testing"

	configapp "github.com/doeshing/envctx/internal/application/config"
	"github.com/doeshing/envctx/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		wantError bool
	}{
		{
			name: "accepts defaults",
			config: domain.Config{
				ConfigFormatVersion: "1",
				Preferences: domain.Preferences{
					DefaultEnvironments: "todo",
					TagMode:             "strict",
					Output:              "text",
				},
			},
		},
		{
			name:   "accepts empty preferences",
			config: domain.Config{},
		},
		{
			name: "accepts mixed case names",
			config: domain.Config{Preferences: domain.Preferences{
				DefaultEnvironments: "ALL",
				TagMode:             "Presence",
				Output:              "JSON",
			}},
		},
		{
			name:      "rejects unknown environments",
			config:    domain.Config{Preferences: domain.Preferences{DefaultEnvironments: "staging"}},
			wantError: true,
		},
		{
			name:      "rejects unknown tag mode",
			config:    domain.Config{Preferences: domain.Preferences{TagMode: "loose"}},
			wantError: true,
		},
		{
			name:      "rejects unknown output",
			config:    domain.Config{Preferences: domain.Preferences{Output: "xml"}},
			wantError: true,
		},
		{
			name:      "rejects future format version",
			config:    domain.Config{ConfigFormatVersion: "2"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := configapp.Validate(tt.config)
			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
