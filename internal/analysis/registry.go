package analysis

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBadRequest marks user errors in analysis parameters (unknown
// nodes, missing fields). Handlers map it to a 4xx status.
var ErrBadRequest = errors.New("bad analysis request")

// Runner executes one kind of analysis against a graph model.
type Runner func(m *Model, req *Request) (*Result, error)

// Registry maps analysis kinds to their runners.
// It is safe for concurrent reads; Register should only be called at startup.
type Registry struct {
	mu      sync.RWMutex
	runners map[Kind]Runner
}

// NewRegistry creates a Registry with all built-in analyses registered.
func NewRegistry() *Registry {
	r := &Registry{runners: make(map[Kind]Runner)}
	r.Register(KindDominators, runDominators)
	r.Register(KindPostdominators, runPostdominators)
	r.Register(KindPaths, runPaths)
	r.Register(KindReachable, runReachable)
	return r
}

// Register adds a runner. Panics on duplicate kind to surface
// misconfiguration early.
func (r *Registry) Register(k Kind, run Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.runners[k]; exists {
		panic(fmt.Sprintf("analysis registry: duplicate kind %q", k))
	}
	r.runners[k] = run
}

// Get returns the runner for the given kind.
func (r *Registry) Get(k Kind) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runners[k]
	if !ok {
		return nil, fmt.Errorf("%w: unknown analysis kind %q", ErrBadRequest, k)
	}
	return run, nil
}

// Kinds returns all registered analysis kinds.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Kind, 0, len(r.runners))
	for k := range r.runners {
		out = append(out, k)
	}
	return out
}
