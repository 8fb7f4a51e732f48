package domain

// Config mirrors ~/.envctx/config.yaml.
type Config struct {
	ConfigFormatVersion string      `yaml:"config_format_version" json:"config_format_version"`
	Preferences         Preferences `yaml:"preferences" json:"preferences"`
}

// Preferences captures user level defaults.
type Preferences struct {
	// DefaultEnvironments names the canonical set used when none is given: all, test or todo.
	DefaultEnvironments string `yaml:"default_environments" json:"default_environments"`
	// TagMode is the document classification mode: strict or presence.
	TagMode     string `yaml:"tag_mode" json:"tag_mode"`
	ProjectPath string `yaml:"project_path" json:"project_path"`
	Output      string `yaml:"output" json:"output"`
}

// OutputFormat selects how the CLI renders results.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)
