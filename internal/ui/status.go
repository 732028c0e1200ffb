package ui

import "fmt"

// Status is the per-frame information shown in the HUD.
type Status struct {
	Generation uint64
	Population int
	Cells      int
	Paused     bool
	TPS        int
}

// Line formats s as a single HUD line.
func (s Status) Line() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	density := 0.0
	if s.Cells > 0 {
		density = float64(s.Population) / float64(s.Cells) * 100
	}
	return fmt.Sprintf("gen %d | live %d (%.1f%%) | %d tps | %s",
		s.Generation, s.Population, density, s.TPS, state)
}
