package life

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a width or
	// height below one.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrIndexOutOfBounds is returned when a coordinate lies outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidProbability is returned when a seeding probability is outside [0, 1].
	ErrInvalidProbability = errors.New("invalid probability")
)
