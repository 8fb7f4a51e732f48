package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/pkg/inflect"
)

func TestDescribeProjectContext(t *testing.T) {
	eng := domain.NewEngineeringEnvironment(inflect.SnakeCase("devBox"), domain.EngineeringFlags{Test: true})
	set := domain.NewSomeExecutionEnvironments(inflect.SnakeCase("test"), eng)

	got := domain.DescribeProjectContext(domain.NewProjectContext("", set))

	path := ""
	want := domain.ContextView{
		Tags:        []string{"isContext", "isProjectContext"},
		ProjectPath: &path,
		ExecEnvs: domain.EnvironmentsView{
			Name:      "test",
			SnakeName: "test",
			Tags:      []string{"isExecutionEnvironments", "isSomeExecutionEnvironments"},
			Environments: []domain.EnvironmentView{{
				Name:      "devBox",
				SnakeName: "dev_box",
				Tags:      []string{"isExecutionEnvironment", "isEngineeringEnvironment", "isTestEnvironment"},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeContextWithoutProject(t *testing.T) {
	got := domain.DescribeContext(domain.NewContext(domain.NewAllExecutionEnvironments(inflect.SnakeCase("all"))))
	if got.ProjectPath != nil {
		t.Fatalf("plain context must not carry a project path, got %q", *got.ProjectPath)
	}
	if len(got.ExecEnvs.Environments) != 0 {
		t.Fatalf("all set lists no members, got %d", len(got.ExecEnvs.Environments))
	}
}
