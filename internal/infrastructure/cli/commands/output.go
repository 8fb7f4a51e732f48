package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/envctx/internal/app"
	configapp "github.com/doeshing/envctx/internal/application/config"
	"github.com/doeshing/envctx/internal/domain"
)

// addOutputFlag registers -o/--output on cmd.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, flagOutput, "o", "", "Output format: text|json|yaml (default from config)")
}

// resolveOutput picks the flag value, then the configured preference.
func resolveOutput(ctx context.Context, container *app.Container, flag string) (domain.OutputFormat, error) {
	if flag != "" {
		return configapp.ParseOutput(flag)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return configapp.ParseOutput(cfg.Preferences.Output)
}

func joinTags(keys []string) string {
	if len(keys) == 0 {
		return MsgNoTags
	}
	return strings.Join(keys, ", ")
}
