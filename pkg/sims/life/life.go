package life

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"lifegrid/pkg/core"
)

// Source supplies independent uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

// Cell addresses a grid cell by row and column.
type Cell struct {
	Row    int
	Column int
}

// Life implements Conway's Game of Life on a toroidal bit grid.
//
// Two fixed buffers alternate roles every tick. Between ticks the current
// buffer is both the committed generation that Cells exposes and the buffer
// that Toggle, SetCells, Clear and SeedRandom edit. Tick reads the current
// buffer, writes the other one and flips the roles without copying.
//
// A Life is single-owner: callers must not mutate or tick it from multiple
// goroutines without external synchronization.
type Life struct {
	w, h    int
	buffers [2]*bitset.BitSet
	cur     int
	gen     uint64
	cfg     Config
}

// New returns a Life simulation with the provided dimensions and default
// seeding parameters. All cells start dead.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[life.New] %dx%d", cfg.Width, cfg.Height)
	}
	if !validProbability(cfg.Density) {
		return nil, errors.Wrapf(ErrInvalidProbability, "[life.New] density %v", cfg.Density)
	}
	total := uint(cfg.Width * cfg.Height)
	return &Life{
		w:       cfg.Width,
		h:       cfg.Height,
		buffers: [2]*bitset.BitSet{bitset.New(total), bitset.New(total)},
		cfg:     cfg,
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Width returns the number of columns.
func (l *Life) Width() int { return l.w }

// Height returns the number of rows.
func (l *Life) Height() int { return l.h }

// Generation returns the number of ticks completed since construction.
func (l *Life) Generation() uint64 { return l.gen }

// Cells exposes a read-only view of the committed generation. The view is not
// a copy and remains valid until the next mutation or tick.
func (l *Life) Cells() View {
	return View{bits: l.current(), w: l.w, h: l.h}
}

// Population returns the number of live cells in the committed generation.
func (l *Life) Population() int { return int(l.current().Count()) }

// Alive reports whether the cell at (row, column) is alive.
func (l *Life) Alive(row, column int) (bool, error) {
	idx, err := l.index(row, column)
	if err != nil {
		return false, err
	}
	return l.current().Test(idx), nil
}

// SeedRandom sets every cell alive with the given probability, drawing exactly
// one sample per cell from src in row-major order.
func (l *Life) SeedRandom(probability float64, src Source) error {
	if !validProbability(probability) {
		return errors.Wrapf(ErrInvalidProbability, "[SeedRandom] %v", probability)
	}
	buf := l.current()
	for i := uint(0); i < buf.Len(); i++ {
		buf.SetTo(i, src.Float64() < probability)
	}
	return nil
}

// Reset reseeds the grid with the configured density. A zero seed uses the
// configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	// density was validated at construction
	_ = l.SeedRandom(l.cfg.Density, core.NewRNG(seed))
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.current().ClearAll()
}

// Toggle flips the cell at (row, column) relative to its committed state.
func (l *Life) Toggle(row, column int) error {
	idx, err := l.index(row, column)
	if err != nil {
		return err
	}
	buf := l.current()
	buf.SetTo(idx, !buf.Test(idx))
	return nil
}

// SetCells sets every listed cell to alive. Coordinates are validated up front
// so a bad entry leaves the grid untouched.
func (l *Life) SetCells(cells []Cell, alive bool) error {
	for _, c := range cells {
		if _, err := l.index(c.Row, c.Column); err != nil {
			return err
		}
	}
	buf := l.current()
	for _, c := range cells {
		buf.SetTo(uint(c.Row*l.w+c.Column), alive)
	}
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.Tick() }

// Tick computes the next generation from the current buffer into the other
// buffer and swaps their roles. Every cell has eight neighbour slots; on grids
// narrower or shorter than three cells some slots wrap onto the same cell.
func (l *Life) Tick() {
	src, dst := l.buffers[l.cur], l.buffers[l.cur^1]
	if src.Len() != dst.Len() || src.Len() != uint(l.w*l.h) {
		panic("life: buffer length mismatch")
	}

	w, h := l.w, l.h
	for row := 0; row < h; row++ {
		up := ((row + h - 1) % h) * w
		mid := row * w
		down := ((row + 1) % h) * w
		for col := 0; col < w; col++ {
			left := (col + w - 1) % w
			right := (col + 1) % w

			neighbors := bit(src, up+left) + bit(src, up+col) + bit(src, up+right) +
				bit(src, mid+left) + bit(src, mid+right) +
				bit(src, down+left) + bit(src, down+col) + bit(src, down+right)

			idx := uint(mid + col)
			dst.SetTo(idx, nextState(src.Test(idx), neighbors))
		}
	}
	l.cur ^= 1
	l.gen++
}

func nextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false // underpopulation
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false // overpopulation
	case !alive && neighbors == 3:
		return true // reproduction
	}
	return alive
}

func bit(b *bitset.BitSet, i int) int {
	if b.Test(uint(i)) {
		return 1
	}
	return 0
}

func (l *Life) current() *bitset.BitSet { return l.buffers[l.cur] }

func (l *Life) index(row, column int) (uint, error) {
	if row < 0 || row >= l.h || column < 0 || column >= l.w {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "(%d, %d) in %dx%d grid", row, column, l.h, l.w)
	}
	return uint(row*l.w + column), nil
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
