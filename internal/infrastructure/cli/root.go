package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/envctx/internal/app"
	"github.com/doeshing/envctx/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, app.Options{
		ConfigPath: opts.ConfigPath,
		Verbose:    opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	var configPath string
	root := &cobra.Command{
		Use:   "envctx",
		Short: "envctx - execution context vocabulary",
		Long: "envctx builds execution contexts over the canonical environment sets\n" +
			"and reports which discriminant tags a value or document carries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath != "" {
				container.ConfigLoader.SetPath(configPath)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = container.Logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.envctx/config.yaml or $ENVCTX_CONFIG)")

	root.AddCommand(commands.NewContextCommand(container))
	root.AddCommand(commands.NewEnvsCommand(container))
	root.AddCommand(commands.NewClassifyCommand(container))
	root.AddCommand(commands.NewRevisionCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
