// Package health keeps the set of components consulted by the readiness
// probe: the mesh agent dispatcher and, when the directory comes from
// Postgres, the database it was loaded from.
package health

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/ward-alert-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// ErrDegraded marks a check result for a component that still accepts work,
// such as an agent whose breaker is letting trial broadcasts through.
// Readiness stays up while every failing check wraps it.
var ErrDegraded = errors.New("degraded")

// Registry is a concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker. Checkers registering under the same name replace
// each other in CheckAll results; the last one registered wins.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently and returns the results keyed by
// checker name; a nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = c.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
