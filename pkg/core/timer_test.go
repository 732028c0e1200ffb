package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPacerDue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(10, clock.now)

	if got := p.Due(); got != 1 {
		t.Fatalf("first Due() = %d, want 1", got)
	}
	if got := p.Due(); got != 0 {
		t.Fatalf("Due() without elapsed time = %d, want 0", got)
	}

	clock.advance(250 * time.Millisecond)
	if got := p.Due(); got != 2 {
		t.Fatalf("Due() after 250ms at 10 TPS = %d, want 2", got)
	}

	clock.advance(50 * time.Millisecond)
	if got := p.Due(); got != 1 {
		t.Fatalf("Due() with carried remainder = %d, want 1", got)
	}
}

func TestPacerCatchUpCapped(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 1)}
	p := NewPacer(100, clock.now)
	p.Due()

	clock.advance(10 * time.Second)
	if got := p.Due(); got != MaxCatchUp {
		t.Fatalf("Due() after stall = %d, want %d", got, MaxCatchUp)
	}
	if got := p.Due(); got != 0 {
		t.Fatalf("backlog should be dropped, got %d", got)
	}
}

func TestPacerWait(t *testing.T) {
	clock := &fakeClock{t: time.Unix(5, 0)}
	p := NewPacer(4, clock.now)
	if got := p.Wait(); got != 0 {
		t.Fatalf("Wait() before first tick = %v, want 0", got)
	}
	p.Due()
	clock.advance(100 * time.Millisecond)
	if got := p.Wait(); got != 150*time.Millisecond {
		t.Fatalf("Wait() = %v, want 150ms", got)
	}
}

func TestPacerDefaultsTPS(t *testing.T) {
	p := NewPacer(0, nil)
	if p.Step() != time.Second/60 {
		t.Fatalf("step = %v, want 1/60s", p.Step())
	}
}
