package core

import "time"

// Stats tracks throughput and population for a running simulation.
type Stats struct {
	Generations          uint64
	GenerationsPerSecond float64
	AveragePopulation    float64
	StartTime            time.Time
}

// NewStats returns Stats anchored at start.
func NewStats(start time.Time) *Stats {
	return &Stats{StartTime: start}
}

// Update records one batch of ticks that took duration and ended with
// population live cells.
func (s *Stats) Update(ticks int, population int, duration time.Duration) {
	s.Generations += uint64(ticks)
	if duration > 0 && ticks > 0 {
		s.GenerationsPerSecond = float64(ticks) / duration.Seconds()
	}

	// exponential moving average
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since StartTime as of now.
func (s *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
