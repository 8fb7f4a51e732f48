package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/envctx/internal/app"
	"github.com/doeshing/envctx/internal/application/contexts"
	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/infrastructure/cli/helpers"
)

// NewEnvsCommand creates the envs command listing the canonical constants
func NewEnvsCommand(container *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "envs",
		Short: "List canonical environment sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ContextService == nil {
				return errors.New(ErrContextServiceUnavailable)
			}
			format, err := resolveOutput(cmd.Context(), container, output)
			if err != nil {
				return err
			}
			catalog := container.ContextService.Catalog()
			if format != domain.OutputText {
				return helpers.WriteStructured(cmd.OutOrStdout(), format, catalog)
			}
			displayCatalog(cmd.OutOrStdout(), catalog)
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func displayCatalog(out io.Writer, catalog contexts.Catalog) {
	for _, set := range catalog.Sets {
		displayEnvironments(out, set, "")
	}
	fmt.Fprintf(out, "Production: %s [%s]\n", catalog.Production.SnakeName, joinTags(catalog.Production.Tags))
	fmt.Fprintf(out, "Revision: %s\n", catalog.Revision.Version)
}
