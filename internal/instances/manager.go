// Package instances keeps named Life simulations side by side.
package instances

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/sims/life"
)

var (
	// ErrUnknownInstance is returned when no simulation has the requested name.
	ErrUnknownInstance = errors.New("unknown instance")
	// ErrDuplicateInstance is returned when a name is already taken.
	ErrDuplicateInstance = errors.New("duplicate instance")
)

// Manager maps instance names to simulations. The map itself is safe for
// concurrent use; each simulation keeps its single-owner contract.
type Manager struct {
	mu        sync.RWMutex
	instances map[string]*life.Life
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{instances: make(map[string]*life.Life)}
}

// Add creates a width x height simulation under name.
func (m *Manager) Add(name string, width, height int) (*life.Life, error) {
	sim, err := life.New(width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "[Add] instance %q", name)
	}
	if err := m.Put(name, sim); err != nil {
		return nil, err
	}
	return sim, nil
}

// Put registers an existing simulation under name.
func (m *Manager) Put(name string, sim *life.Life) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[name]; ok {
		return errors.Wrapf(ErrDuplicateInstance, "[Put] %q", name)
	}
	m.instances[name] = sim
	return nil
}

// Get returns the simulation registered under name.
func (m *Manager) Get(name string) (*life.Life, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sim, ok := m.instances[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownInstance, "[Get] %q", name)
	}
	return sim, nil
}

// Delete removes name and reports whether it existed.
func (m *Manager) Delete(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.instances[name]
	delete(m.instances, name)
	return ok
}

// Names returns the registered names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.instances))
	for name := range m.instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered simulations.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.instances)
}

// TickAll advances every simulation by one generation using at most workers
// goroutines. Each simulation is ticked by exactly one goroutine. Simulations
// not yet started when ctx is cancelled are skipped and ctx.Err is returned.
func (m *Manager) TickAll(ctx context.Context, workers int) error {
	m.mu.RLock()
	sims := make([]*life.Life, 0, len(m.instances))
	for _, sim := range m.instances {
		sims = append(sims, sim)
	}
	m.mu.RUnlock()

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for _, sim := range sims {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sim.Tick()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[TickAll]")
	}
	return errors.Wrap(ctx.Err(), "[TickAll]")
}
