package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/envctx/internal/app"
	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/infrastructure/cli/helpers"
)

// NewRevisionCommand creates the revision command
func NewRevisionCommand(container *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "revision",
		Short: "Show the default revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Factory == nil {
				return errors.New(ErrFactoryUnavailable)
			}
			format, err := resolveOutput(cmd.Context(), container, output)
			if err != nil {
				return err
			}
			rev := container.Factory.DefaultRevision()
			if format != domain.OutputText {
				return helpers.WriteStructured(cmd.OutOrStdout(), format, rev)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rev.Version)
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
