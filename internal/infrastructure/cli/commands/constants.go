package commands

// Flag names shared by several commands
const (
	flagOutput = "output"
)

// Error messages
const (
	ErrConfigLoaderUnavailable    = "config loader unavailable"
	ErrDoctorServiceUnavailable   = "doctor service unavailable"
	ErrContextServiceUnavailable  = "context service unavailable"
	ErrClassifyServiceUnavailable = "classify service unavailable"
	ErrFactoryUnavailable         = "context factory unavailable"
	ErrKeyRequired                = "--key is required"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoTags                   = "(no tags)"
)
