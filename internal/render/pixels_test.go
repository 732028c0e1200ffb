package render

import (
	"image/color"
	"testing"

	"lifegrid/pkg/sims/life"
)

func TestFillRGBA(t *testing.T) {
	sim, err := life.New(9, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// indices 1, 64 and 71 straddle the word boundary
	if err := sim.SetCells([]life.Cell{{Row: 0, Column: 1}, {Row: 7, Column: 1}, {Row: 7, Column: 8}}, true); err != nil {
		t.Fatalf("SetCells: %v", err)
	}

	on := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	off := color.RGBA{R: 0, G: 0, B: 32, A: 255}
	buf := make([]byte, 4*72)
	FillRGBA(buf, sim.Cells(), on, off)

	alive := map[int]bool{1: true, 64: true, 71: true}
	for i := 0; i < 72; i++ {
		want := off
		if alive[i] {
			want = on
		}
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestFillRGBAEmptyView(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	FillRGBA(buf, life.View{}, color.White, color.Black)
	if buf[0] != 9 {
		t.Fatal("empty view must not touch the buffer")
	}
}
