package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/ward-alert-service/internal/platform/health"
	"github.com/jsamuelsen11/ward-alert-service/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("CheckAll returned nil map, want empty map")
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	agentErr := errors.New("mesh-agent: failing (circuit breaker open)")

	agent := mocks.NewMockHealthChecker(t)
	agent.EXPECT().Name().Return("mesh-agent")
	agent.EXPECT().HealthCheck(mock.Anything).Return(agentErr)

	dir := mocks.NewMockHealthChecker(t)
	dir.EXPECT().Name().Return("directory")
	dir.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(agent)
	r.Register(dir)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if !errors.Is(results["mesh-agent"], agentErr) {
		t.Errorf("mesh-agent = %v, want %v", results["mesh-agent"], agentErr)
	}
	if results["directory"] != nil {
		t.Errorf("directory = %v, want nil", results["directory"])
	}
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "ward-7")

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("mesh-agent")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(c context.Context) bool {
		return c.Value(key{}) == "ward-7"
	})).Return(nil)

	r := health.New()
	r.Register(checker)
	r.CheckAll(ctx)
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			checker := mocks.NewMockHealthChecker(t)
			checker.EXPECT().Name().Return("mesh-agent").Maybe()
			checker.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
			r.Register(checker)
		}()
		go func() {
			defer wg.Done()
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()

	if got := r.CheckAll(context.Background()); len(got) != 1 {
		t.Errorf("len(results) = %d, want 1 (all checkers share a name)", len(got))
	}
}
