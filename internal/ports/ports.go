// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The domain stays free of I/O; configuration files,
// case conversion and logging reach it only through the interfaces below.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., ConfigProvider, CaseConverter)
//   - Adapters: Concrete implementations in the infrastructure and pkg layers
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/envctx/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically read from ~/.envctx/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CaseConverter is the casing collaborator naming every environment and
// environment set. It must be total for valid identifiers.
type CaseConverter interface {
	ToSnakeCase(raw string) domain.InflectableName
}

// ContextFactory builds contexts and owns the canonical environment sets.
type ContextFactory interface {
	Context(envs domain.ExecutionEnvironments) domain.Context
	ProjectContext(projectPath string, envs domain.ExecutionEnvironments) domain.ProjectContext
	DefaultRevision() domain.Revision
	Lookup(name string) (domain.ExecutionEnvironments, error)
	Canonical() []domain.ExecutionEnvironments
	EnvAll() *domain.AllExecutionEnvironments
	EnvTODO() *domain.NamedEnvironments
	EnvTest() *domain.SomeExecutionEnvironments
	ProductionEnv() *domain.NamedEnvironment
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
