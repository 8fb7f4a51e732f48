package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/envctx/internal/app"
	"github.com/doeshing/envctx/internal/application/classify"
	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/infrastructure/cli/helpers"
)

// classificationView is the structured rendering of a classification.
type classificationView struct {
	Mode         string               `json:"mode,omitempty" yaml:"mode,omitempty"`
	Tags         []string             `json:"tags" yaml:"tags"`
	ExecEnvs     *classificationView  `json:"exec_envs,omitempty" yaml:"exec_envs,omitempty"`
	Environments []classificationView `json:"environments,omitempty" yaml:"environments,omitempty"`
}

// NewClassifyCommand creates the classify command
func NewClassifyCommand(container *app.Container) *cobra.Command {
	var (
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Report the discriminant tags a YAML or JSON document carries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ClassifyService == nil {
				return errors.New(ErrClassifyServiceUnavailable)
			}
			path := helpers.StdinPath
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := helpers.ReadDocument(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			result, err := container.ClassifyService.Classify(ctx, classify.Request{Document: doc, Mode: mode})
			if err != nil {
				return err
			}
			format, err := resolveOutput(ctx, container, output)
			if err != nil {
				return err
			}
			view := toClassificationView(result.Classification)
			view.Mode = string(result.Mode)
			if format != domain.OutputText {
				return helpers.WriteStructured(cmd.OutOrStdout(), format, view)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mode: %s\n", result.Mode)
			displayClassification(cmd.OutOrStdout(), view, "")
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Tag mode: strict|presence (default from config)")
	addOutputFlag(cmd, &output)
	return cmd
}

func toClassificationView(c domain.Classification) classificationView {
	view := classificationView{Tags: c.Tags.Keys()}
	if c.ExecEnvs != nil {
		inner := toClassificationView(*c.ExecEnvs)
		view.ExecEnvs = &inner
	}
	for _, env := range c.Environments {
		view.Environments = append(view.Environments, toClassificationView(env))
	}
	return view
}

func displayClassification(out io.Writer, view classificationView, indent string) {
	fmt.Fprintf(out, "%sTags: %s\n", indent, joinTags(view.Tags))
	next := indent + strings.Repeat(" ", 2)
	if view.ExecEnvs != nil {
		fmt.Fprintf(out, "%s%s:\n", indent, domain.DocumentKeyExecEnvs)
		displayClassification(out, *view.ExecEnvs, next)
	}
	for i, env := range view.Environments {
		fmt.Fprintf(out, "%s%s[%d]:\n", indent, domain.DocumentKeyEnvironments, i)
		displayClassification(out, env, next)
	}
}
