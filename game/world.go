package game

import (
	"math/rand"
	"time"
)

// World describes the play field and the collaborators shared by every entity
// living on it. Entities keep a pointer to the World instead of reaching for
// package globals.
type World struct {
	Config Config

	// Particles receives thrust trails and explosions
	Particles ParticleSink

	rng *rand.Rand
}

// NewWorld creates a world for the given configuration. A nil sink discards
// all particle effects.
func NewWorld(config Config, particles ParticleSink) *World {
	if particles == nil {
		particles = NopSink{}
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &World{
		Config:    config,
		Particles: particles,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Width returns the field width
func (w *World) Width() float64 {
	return w.Config.FieldWidth
}

// Height returns the field height
func (w *World) Height() float64 {
	return w.Config.FieldHeight
}

// Uniform returns a random value in [lo, hi)
func (w *World) Uniform(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

// Intn returns a random int in [0, n)
func (w *World) Intn(n int) int {
	return w.rng.Intn(n)
}

// RandomPosition returns a point chosen uniformly over the field plane
func (w *World) RandomPosition() Vector3 {
	return Vector3{w.Uniform(0, w.Width()), w.Uniform(0, w.Height()), 0}
}

// EdgePosition returns a random point on one of the four field edges
func (w *World) EdgePosition() Vector3 {
	switch w.Intn(4) {
	case 0: // Top
		return Vector3{w.Uniform(0, w.Width()), w.Height(), 0}
	case 1: // Right
		return Vector3{w.Width(), w.Uniform(0, w.Height()), 0}
	case 2: // Bottom
		return Vector3{w.Uniform(0, w.Width()), 0, 0}
	default: // Left
		return Vector3{0, w.Uniform(0, w.Height()), 0}
	}
}

// Wrap applies the field's wrap-around to p with the given margin
func (w *World) Wrap(p Vector3, margin float64) Vector3 {
	return Wrap(p, w.Width(), w.Height(), margin)
}
