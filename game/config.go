package game

import (
	"math"
	"time"
)

// Config holds game configuration constants
type Config struct {
	// FieldWidth is the width of the wrapped play field in world units
	FieldWidth float64

	// FieldHeight is the height of the wrapped play field in world units
	FieldHeight float64

	// FOV is the vertical field of view of the perspective camera in degrees
	FOV float64

	// TickInterval is the wall-clock duration of one simulation tick
	TickInterval time.Duration

	// RespawnDelay is the number of ticks between a ship death and its replacement
	RespawnDelay int

	// NextLevelDelay is the number of ticks between a finished fly-out and the next level
	NextLevelDelay int

	// EnemySpawnInterval is the number of level ticks between scheduled enemy arrivals
	EnemySpawnInterval int

	// Seed feeds the simulation random source. Zero picks a time based seed.
	Seed int64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		FieldWidth:         1000,
		FieldHeight:        800,
		FOV:                45,
		TickInterval:       20 * time.Millisecond,
		RespawnDelay:       100,
		NextLevelDelay:     100,
		EnemySpawnInterval: 500,
	}
}

// CameraDistance is the distance from the field plane at which the camera sees
// exactly FieldHeight vertically. Fly-in and fly-out curves start and end
// slightly behind this point.
func (c Config) CameraDistance() float64 {
	return c.FieldHeight / 2 / math.Tan(degToRad(c.FOV/2))
}

// Center returns the middle of the play field
func (c Config) Center() Vector3 {
	return Vector3{c.FieldWidth / 2, c.FieldHeight / 2, 0}
}
