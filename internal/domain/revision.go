package domain

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DefaultRevisionVersion is the version stamped on the default revision.
const DefaultRevisionVersion SemanticVersion = "1.0.0"

// SemanticVersion is a semantic-version string such as "1.0.0".
type SemanticVersion string

// Semver parses the version strictly.
func (v SemanticVersion) Semver() (*semver.Version, error) {
	parsed, err := semver.StrictNewVersion(string(v))
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", string(v), err)
	}
	return parsed, nil
}

// Revision wraps a semantic version.
type Revision struct {
	Version SemanticVersion `json:"version" yaml:"version"`
}
