package instances

import (
	"context"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"lifegrid/pkg/sims/life"
)

func TestManagerCRUD(t *testing.T) {
	m := NewManager()
	a, err := m.Add("a", 8, 8)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := m.Add("b", 4, 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := m.Add("a", 3, 3); !errors.Is(err, ErrDuplicateInstance) {
		t.Fatalf("duplicate Add err = %v, want ErrDuplicateInstance", err)
	}
	if _, err := m.Add("zero", 0, 3); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("zero-width Add err = %v, want ErrInvalidDimensions", err)
	}

	got, err := m.Get("a")
	if err != nil || got != a {
		t.Fatalf("Get(a) = %p, %v; want %p", got, err, a)
	}
	if !slices.Equal(m.Names(), []string{"a", "b"}) || m.Len() != 2 {
		t.Fatalf("Names() = %v, Len() = %d", m.Names(), m.Len())
	}

	if !m.Delete("a") {
		t.Fatal("Delete(a) reported missing")
	}
	if m.Delete("a") {
		t.Fatal("second Delete(a) reported present")
	}
	if _, err := m.Get("a"); !errors.Is(err, ErrUnknownInstance) {
		t.Fatalf("Get after delete err = %v, want ErrUnknownInstance", err)
	}
}

func TestTickAll(t *testing.T) {
	m := NewManager()
	for _, name := range []string{"one", "two", "three", "four", "five"} {
		sim, err := m.Add(name, 5, 5)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if err := sim.SetCells([]life.Cell{{Row: 2, Column: 1}, {Row: 2, Column: 2}, {Row: 2, Column: 3}}, true); err != nil {
			t.Fatalf("SetCells: %v", err)
		}
	}

	if err := m.TickAll(context.Background(), 2); err != nil {
		t.Fatalf("TickAll: %v", err)
	}
	for _, name := range m.Names() {
		sim, _ := m.Get(name)
		if sim.Generation() != 1 {
			t.Fatalf("%s generation = %d, want 1", name, sim.Generation())
		}
		if !sim.Cells().AliveAt(1, 2) || sim.Cells().AliveAt(2, 1) {
			t.Fatalf("%s did not advance the blinker", name)
		}
	}
}

func TestTickAllCancelled(t *testing.T) {
	m := NewManager()
	sim, err := m.Add("solo", 4, 4)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.TickAll(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("TickAll err = %v, want context.Canceled", err)
	}
	if sim.Generation() != 0 {
		t.Fatal("cancelled TickAll must not advance simulations")
	}
}
