package factory_test

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/doeshing/envctx/internal/application/factory"
	"github.com/doeshing/envctx/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultFactorySharedAcrossGoroutines(t *testing.T) {
	var g errgroup.Group
	first := factory.Default()

	for i := 0; i < 32; i++ {
		i := i
		g.Go(func() error {
			f := factory.Default()
			if f != first {
				return fmt.Errorf("goroutine %d saw a second factory", i)
			}
			ctx := f.ProjectContext(fmt.Sprintf("/work/%d", i), nil)
			if ctx.ExecEnvs() != domain.ExecutionEnvironments(f.EnvTODO()) {
				return fmt.Errorf("goroutine %d: context did not default to TODO", i)
			}
			members := f.EnvTest().Environments()
			if len(members) != 1 || !domain.IsTestEnvironment(members[0]) {
				return fmt.Errorf("goroutine %d: unexpected test set %v", i, members)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
