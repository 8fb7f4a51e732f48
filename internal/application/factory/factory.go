// Package factory owns the canonical execution environments and builds
// contexts from them.
package factory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/pkg/inflect"
	"github.com/doeshing/envctx/internal/ports"
)

// Factory holds the canonical environment constants. The constants are
// built once in New and never modified, so a Factory is safe to share.
type Factory struct {
	testEngineering *domain.EngineeringEnvironment

	envAll        *domain.AllExecutionEnvironments
	envTest       *domain.SomeExecutionEnvironments
	envTODO       *domain.NamedEnvironments
	productionEnv *domain.NamedEnvironment
}

// New builds a factory naming its constants through caser.
func New(caser ports.CaseConverter) *Factory {
	testEngineering := domain.NewEngineeringEnvironment(
		caser.ToSnakeCase(domain.EnvironmentNameTestEngineering),
		domain.EngineeringFlags{DevlSandbox: true, DevlIntegration: true, Test: true},
	)
	return &Factory{
		testEngineering: testEngineering,
		envAll:          domain.NewAllExecutionEnvironments(caser.ToSnakeCase(domain.EnvironmentsNameAll)),
		envTest:         domain.NewSomeExecutionEnvironments(caser.ToSnakeCase(domain.EnvironmentsNameTest), testEngineering),
		envTODO:         domain.NewNamedEnvironments(caser.ToSnakeCase(domain.EnvironmentsNameTODO)),
		productionEnv:   domain.NewNamedEnvironment(caser.ToSnakeCase(domain.EnvironmentNameProduction)),
	}
}

var defaultFactory = sync.OnceValue(func() *Factory {
	return New(inflect.NewConverter())
})

// Default returns the process-wide factory, built on first use.
func Default() *Factory {
	return defaultFactory()
}

// EnvAll is the set standing for every environment.
func (f *Factory) EnvAll() *domain.AllExecutionEnvironments { return f.envAll }

// EnvTest is the set holding the single test-engineering environment.
func (f *Factory) EnvTest() *domain.SomeExecutionEnvironments { return f.envTest }

// EnvTODO is the placeholder set used when no set is given.
func (f *Factory) EnvTODO() *domain.NamedEnvironments { return f.envTODO }

// ProductionEnv is the bare production environment.
func (f *Factory) ProductionEnv() *domain.NamedEnvironment { return f.productionEnv }

// Context builds a context for envs. A nil envs selects EnvTODO.
func (f *Factory) Context(envs domain.ExecutionEnvironments) domain.Context {
	return domain.NewContext(f.orTODO(envs))
}

// ProjectContext builds a context bound to projectPath, which is kept as
// given. A nil envs selects EnvTODO.
func (f *Factory) ProjectContext(projectPath string, envs domain.ExecutionEnvironments) domain.ProjectContext {
	return domain.NewProjectContext(projectPath, f.orTODO(envs))
}

// DefaultRevision returns the 1.0.0 revision.
func (f *Factory) DefaultRevision() domain.Revision {
	return domain.Revision{Version: domain.DefaultRevisionVersion}
}

// Canonical lists the canonical sets: all, test, TODO.
func (f *Factory) Canonical() []domain.ExecutionEnvironments {
	return []domain.ExecutionEnvironments{f.envAll, f.envTest, f.envTODO}
}

// Lookup resolves a canonical set by its raw or snake_case name, ignoring case.
func (f *Factory) Lookup(name string) (domain.ExecutionEnvironments, error) {
	want := strings.TrimSpace(name)
	for _, envs := range f.Canonical() {
		n := envs.EnvironmentsName()
		if strings.EqualFold(n.Text(), want) || strings.EqualFold(n.Snake(), want) {
			return envs, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEnvironments, name)
}

func (f *Factory) orTODO(envs domain.ExecutionEnvironments) domain.ExecutionEnvironments {
	if !domain.IsExecutionEnvironments(envs) {
		return f.envTODO
	}
	return envs
}

var _ ports.ContextFactory = (*Factory)(nil)
