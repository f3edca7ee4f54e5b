package game

import "errors"

var (
	// ErrInvalidSize is returned when an asteroid size is outside [1, MaxAsteroidSize]
	ErrInvalidSize = errors.New("invalid asteroid size")

	// ErrNonFinite is returned when a construction input contains NaN or Inf
	ErrNonFinite = errors.New("non-finite value")

	// ErrIllegalTransition is returned when a state change is not in the transition table
	ErrIllegalTransition = errors.New("illegal state transition")

	// ErrInvalidLevel is returned for malformed level table entries
	ErrInvalidLevel = errors.New("invalid level")

	// ErrUnknownEnemyKind is returned for enemy kinds missing from the kind table
	ErrUnknownEnemyKind = errors.New("unknown enemy kind")
)
