package life

import "github.com/bits-and-blooms/bitset"

// WordBits is the number of cells packed into each word of a View.
const WordBits = 64

// View is a read-only window onto a committed generation.
//
// Cells are packed one bit per cell into 64-bit words, low bit first: cell i
// (row*width + column) is bit i%64 of word i/64. Bits past the last cell are
// always zero. A View shares memory with the simulation, so it reflects edits
// and is overwritten by the tick after next.
type View struct {
	bits *bitset.BitSet
	w, h int
}

// Len returns the number of cells.
func (v View) Len() int { return v.w * v.h }

// Width returns the number of columns.
func (v View) Width() int { return v.w }

// Height returns the number of rows.
func (v View) Height() int { return v.h }

// Alive reports whether the cell at linear index i is alive. Out of range
// indices report false.
func (v View) Alive(i int) bool {
	if v.bits == nil || i < 0 || i >= v.Len() {
		return false
	}
	return v.bits.Test(uint(i))
}

// AliveAt reports whether the cell at (row, column) is alive. Out of range
// coordinates report false.
func (v View) AliveAt(row, column int) bool {
	if row < 0 || row >= v.h || column < 0 || column >= v.w {
		return false
	}
	return v.Alive(row*v.w + column)
}

// WordCount returns the number of packed words.
func (v View) WordCount() int {
	return (v.Len() + WordBits - 1) / WordBits
}

// Word returns packed word i.
func (v View) Word(i int) uint64 {
	if v.bits == nil || i < 0 || i >= v.WordCount() {
		return 0
	}
	return v.bits.Bytes()[i]
}

// AppendWords appends the packed words to dst and returns the extended slice.
func (v View) AppendWords(dst []uint64) []uint64 {
	if v.bits == nil {
		return dst
	}
	return append(dst, v.bits.Bytes()[:v.WordCount()]...)
}

// Count returns the number of live cells.
func (v View) Count() int {
	if v.bits == nil {
		return 0
	}
	return int(v.bits.Count())
}
