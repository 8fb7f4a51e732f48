package doctor

import (
	"context"
	"fmt"

	configapp "github.com/doeshing/envctx/internal/application/config"
	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/ports"
)

// Service runs self diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Factory        ports.ContextFactory
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format %s", cfg.ConfigFormatVersion)))
	}

	if s.Factory == nil {
		checks = append(checks, warn("Factory", "context factory not initialized"))
		return domain.HealthReport{Checks: checks}, nil
	}

	checks = append(checks,
		testSetCheck(s.Factory.EnvTest()),
		allSetCheck(s.Factory.EnvAll()),
		defaultingCheck(s.Factory),
		revisionCheck(s.Factory.DefaultRevision()),
	)
	if _, err := s.Factory.Lookup(cfg.Preferences.DefaultEnvironments); err != nil {
		checks = append(checks, fail("Default environments", err.Error()))
	} else {
		checks = append(checks, ok("Default environments", cfg.Preferences.DefaultEnvironments))
	}

	return domain.HealthReport{Checks: checks}, nil
}

var isEngineering = domain.TypeGuard[*domain.EngineeringEnvironment]()

func testSetCheck(envTest *domain.SomeExecutionEnvironments) domain.HealthCheck {
	if !domain.IsSomeExecutionEnvironments(envTest) {
		return fail("Test environments", "not an explicit environment list")
	}
	members := envTest.Environments()
	if len(members) != 1 {
		return fail("Test environments", fmt.Sprintf("expected 1 member, got %d", len(members)))
	}
	env := members[0]
	if !isEngineering(env) ||
		!domain.IsDevlSandboxEnvironment(env) ||
		!domain.IsDevlIntegrationEnvironment(env) ||
		!domain.IsTestEnvironment(env) {
		return fail("Test environments", fmt.Sprintf("member carries tags %s", domain.TagsOf(env)))
	}
	return ok("Test environments", env.EnvironmentName().String())
}

func allSetCheck(envAll *domain.AllExecutionEnvironments) domain.HealthCheck {
	if !domain.IsAllExecutionEnvironments(envAll) || domain.IsSomeExecutionEnvironments(envAll) {
		return fail("All environments", fmt.Sprintf("unexpected tags %s", domain.TagsOf(envAll)))
	}
	return ok("All environments", envAll.EnvironmentsName().String())
}

func defaultingCheck(f ports.ContextFactory) domain.HealthCheck {
	var todo domain.ExecutionEnvironments = f.EnvTODO()
	if f.Context(nil).ExecEnvs() != todo {
		return fail("Context defaults", "context without environments does not use TODO")
	}
	if f.ProjectContext("", nil).ExecEnvs() != todo {
		return fail("Context defaults", "project context without environments does not use TODO")
	}
	return ok("Context defaults", todo.EnvironmentsName().String())
}

func revisionCheck(rev domain.Revision) domain.HealthCheck {
	v, err := rev.Version.Semver()
	if err != nil {
		return fail("Default revision", err.Error())
	}
	return ok("Default revision", v.String())
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
