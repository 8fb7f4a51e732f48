package contexts

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/ports"
)

// Service builds contexts from CLI input and configured defaults.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Factory        ports.ContextFactory
	Logger         ports.Logger
}

// Request selects the environment set and project of a context.
type Request struct {
	// Environments names a canonical set; empty uses the configured default.
	Environments string
	// ProjectPath is used when HasProject is set, even if empty.
	ProjectPath string
	HasProject  bool
}

// Catalog describes the canonical constants of the factory.
type Catalog struct {
	Sets       []domain.EnvironmentsView `json:"sets" yaml:"sets"`
	Production domain.EnvironmentView    `json:"production" yaml:"production"`
	Revision   domain.Revision           `json:"revision" yaml:"revision"`
}

// Build resolves req against the configuration and returns the context view.
func (s *Service) Build(ctx context.Context, req Request) (domain.ContextView, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.ContextView{}, fmt.Errorf("load config: %w", err)
	}

	name := strings.TrimSpace(req.Environments)
	if name == "" {
		name = cfg.Preferences.DefaultEnvironments
	}
	var envs domain.ExecutionEnvironments
	if name != "" {
		envs, err = s.Factory.Lookup(name)
		if err != nil {
			return domain.ContextView{}, err
		}
	}

	projectPath, hasProject := req.ProjectPath, req.HasProject
	if !hasProject && cfg.Preferences.ProjectPath != "" {
		projectPath, hasProject = cfg.Preferences.ProjectPath, true
	}

	s.log("building context", map[string]interface{}{
		"environments": name,
		"project":      hasProject,
	})

	if hasProject {
		return domain.DescribeProjectContext(s.Factory.ProjectContext(projectPath, envs)), nil
	}
	return domain.DescribeContext(s.Factory.Context(envs)), nil
}

// Catalog lists the canonical sets, the production environment and the default revision.
func (s *Service) Catalog() Catalog {
	canonical := s.Factory.Canonical()
	sets := make([]domain.EnvironmentsView, 0, len(canonical))
	for _, envs := range canonical {
		sets = append(sets, domain.DescribeEnvironments(envs))
	}
	return Catalog{
		Sets:       sets,
		Production: domain.DescribeEnvironment(s.Factory.ProductionEnv()),
		Revision:   s.Factory.DefaultRevision(),
	}
}

func (s *Service) log(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}
