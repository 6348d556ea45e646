package geometry

import "errors"

var (
	ErrInvalidSegmentCount = errors.New("geometry: segment counts must be >= 1")
	ErrInvalidRadius       = errors.New("geometry: radii must be > 0")
	ErrInvalidLevel        = errors.New("geometry: subdivision level must be >= 0")
	ErrInvalidProbability  = errors.New("geometry: survival probability must not exceed 1")
	ErrInvalidCubeSize     = errors.New("geometry: cube size must be > 0")
	ErrMissingRandSource   = errors.New("geometry: stochastic subdivision requires a random source")
)
