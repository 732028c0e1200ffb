package core

import (
	"sort"
	"sync"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the total number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Sim defines the minimal contract a host shell drives. Implementations are
// single-owner: callers must not invoke Reset or Step concurrently.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var (
	simsMu sync.RWMutex
	sims   = map[string]Factory{}
)

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	simsMu.Lock()
	defer simsMu.Unlock()
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	simsMu.RLock()
	defer simsMu.RUnlock()
	f, ok := sims[name]
	return f, ok
}

// Sims returns the sorted names of all registered factories.
func Sims() []string {
	simsMu.RLock()
	defer simsMu.RUnlock()
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
