package domain

// Config constants
const (
	// ConfigFormatVersion is the config schema version written by this build
	ConfigFormatVersion = "1"
	// ConfigDirName is the directory under the user's home holding the config file
	ConfigDirName = ".envctx"
	// ConfigFileName is the config file name
	ConfigFileName = "config.yaml"
	// ConfigPathEnvVar overrides the config file location
	ConfigPathEnvVar = "ENVCTX_CONFIG"
	// DebugEnvVar enables verbose logging when set to 1 or true
	DebugEnvVar = "ENVCTX_DEBUG"
)

// Canonical environment set names, as given to the casing collaborator.
const (
	EnvironmentsNameAll  = "all"
	EnvironmentsNameTest = "test"
	EnvironmentsNameTODO = "TODO"

	EnvironmentNameProduction      = "production"
	EnvironmentNameTestEngineering = "test_engineering"
)
