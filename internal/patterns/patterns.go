// Package patterns holds well-known Life seed shapes.
package patterns

import (
	"sort"

	"lifegrid/pkg/sims/life"
)

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []life.Cell
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = Pattern{Name: "glider", Cells: cells(0, 1, 1, 2, 2, 0, 2, 1, 2, 2)}
	// Blinker is a period-two oscillator.
	Blinker = Pattern{Name: "blinker", Cells: cells(0, 0, 0, 1, 0, 2)}
	// Block is a still life.
	Block = Pattern{Name: "block", Cells: cells(0, 0, 0, 1, 1, 0, 1, 1)}
	// Spaceship is the lightweight spaceship, moving two columns every four
	// generations.
	Spaceship = Pattern{Name: "spaceship", Cells: cells(
		0, 1, 0, 4,
		1, 0,
		2, 0, 2, 4,
		3, 0, 3, 1, 3, 2, 3, 3,
	)}
)

// cells builds a cell list from flattened row, column pairs.
func cells(rc ...int) []life.Cell {
	out := make([]life.Cell, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		out = append(out, life.Cell{Row: rc[i], Column: rc[i+1]})
	}
	return out
}

var byName = map[string]Pattern{
	Glider.Name:    Glider,
	Blinker.Name:   Blinker,
	Block.Name:     Block,
	Spaceship.Name: Spaceship,
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := byName[name]
	return p, ok
}

// Names returns all pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place writes p into sim with its top-left corner at (row, column). Cells
// that fall off an edge wrap to the opposite one.
func Place(sim *life.Life, p Pattern, row, column int) error {
	w, h := sim.Width(), sim.Height()
	placed := make([]life.Cell, len(p.Cells))
	for i, c := range p.Cells {
		placed[i] = life.Cell{
			Row:    wrap(row+c.Row, h),
			Column: wrap(column+c.Column, w),
		}
	}
	return sim.SetCells(placed, true)
}

func wrap(v, n int) int {
	return (v%n + n) % n
}
