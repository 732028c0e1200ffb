package core

import "time"

// MaxCatchUp bounds how many ticks a single Due call may report after a stall.
const MaxCatchUp = 8

// Pacer turns wall-clock time into a steady ticks-per-second budget.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting tps ticks per second. A nil clock uses
// time.Now. Non-positive tps falls back to 60.
func NewPacer(tps int, clock func() time.Time) *Pacer {
	if clock == nil {
		clock = time.Now
	}
	p := &Pacer{now: clock}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Step reports the duration of a single tick.
func (p *Pacer) Step() time.Duration { return p.step }

// Due reports how many ticks should run now. The first call always yields one
// tick. Backlog beyond MaxCatchUp is dropped.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 1
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	if n > MaxCatchUp {
		n = MaxCatchUp
		p.accumulator = 0
	}
	return n
}

// Wait returns how long until the next tick is due.
func (p *Pacer) Wait() time.Duration {
	if p.last.IsZero() {
		return 0
	}
	elapsed := p.accumulator + p.now().Sub(p.last)
	if elapsed >= p.step {
		return 0
	}
	return p.step - elapsed
}
