// Package version carries build metadata, set through -ldflags at release time.
package version

var (
	// Version is the released version of envctx.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = ""
	// BuildDate is the RFC 3339 build timestamp.
	BuildDate = ""
)
