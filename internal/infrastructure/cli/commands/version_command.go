package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	configapp "github.com/doeshing/envctx/internal/application/config"
	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/infrastructure/cli/helpers"
	"github.com/doeshing/envctx/internal/version"
)

// buildInfo is the structured form of the version output.
type buildInfo struct {
	Version             string `json:"version" yaml:"version"`
	Commit              string `json:"commit,omitempty" yaml:"commit,omitempty"`
	BuildDate           string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion           string `json:"go_version" yaml:"go_version"`
	ConfigFormatVersion string `json:"config_format_version" yaml:"config_format_version"`
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var (
		short  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show envctx version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Version)
				return nil
			}
			info := currentBuildInfo()
			format, err := configapp.ParseOutput(output)
			if err != nil {
				return err
			}
			if format == domain.OutputText {
				return displayVersionInformation(out, info)
			}
			return helpers.WriteStructured(out, format, info)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.Flags().StringVarP(&output, flagOutput, "o", "", "Output format: text|json|yaml")
	return cmd
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Version:             version.Version,
		Commit:              version.Commit,
		BuildDate:           version.BuildDate,
		GoVersion:           runtime.Version(),
		ConfigFormatVersion: domain.ConfigFormatVersion,
	}
}

// displayVersionInformation displays version information
func displayVersionInformation(out io.Writer, info buildInfo) error {
	fmt.Fprintf(out, "envctx version %s\n", info.Version)

	if info.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", info.Commit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", info.BuildDate)
	}

	fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
	fmt.Fprintf(out, "Config format: %s\n", info.ConfigFormatVersion)
	return nil
}
