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

// NewContextCommand creates the context command
func NewContextCommand(container *app.Container) *cobra.Command {
	var (
		envs    string
		project string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Build an execution context",
		Long: "Build a context for a canonical environment set (all, test or todo).\n" +
			"Without --envs the configured default is used; --project binds the context to a project.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ContextService == nil {
				return errors.New(ErrContextServiceUnavailable)
			}
			ctx := cmd.Context()
			view, err := container.ContextService.Build(ctx, contexts.Request{
				Environments: envs,
				ProjectPath:  project,
				HasProject:   cmd.Flags().Changed("project"),
			})
			if err != nil {
				return err
			}
			format, err := resolveOutput(ctx, container, output)
			if err != nil {
				return err
			}
			if format != domain.OutputText {
				return helpers.WriteStructured(cmd.OutOrStdout(), format, view)
			}
			displayContext(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&envs, "envs", "e", "", "Environment set: all|test|todo (default from config)")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Project path; builds a project context")
	addOutputFlag(cmd, &output)
	return cmd
}

// displayContext prints a context in plain text
func displayContext(out io.Writer, view domain.ContextView) {
	fmt.Fprintf(out, "Context: %s\n", joinTags(view.Tags))
	if view.ProjectPath != nil {
		fmt.Fprintf(out, "Project: %q\n", *view.ProjectPath)
	}
	displayEnvironments(out, view.ExecEnvs, "")
}

// displayEnvironments prints an environment set and its members
func displayEnvironments(out io.Writer, view domain.EnvironmentsView, indent string) {
	fmt.Fprintf(out, "%sEnvironments: %s [%s]\n", indent, view.SnakeName, joinTags(view.Tags))
	for _, env := range view.Environments {
		fmt.Fprintf(out, "%s  - %s [%s]\n", indent, env.SnakeName, joinTags(env.Tags))
	}
}
