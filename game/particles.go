package game

import "image/color"

// ParticleSink receives fire-and-forget particle effects. The simulation never
// reads anything back from it.
type ParticleSink interface {
	// EmitThrust emits an engine trail at pos travelling along dir
	EmitThrust(pos, dir Vector3)

	// EmitExplosion emits a burst of sparks at pos, drifting with vel
	EmitExplosion(pos Vector3, c color.RGBA, vel Vector3)
}

// ParticleUpdater is implemented by sinks that animate their particles once per
// simulation tick.
type ParticleUpdater interface {
	Update()
}

// NopSink discards every effect
type NopSink struct{}

// EmitThrust implements ParticleSink
func (NopSink) EmitThrust(pos, dir Vector3) {}

// EmitExplosion implements ParticleSink
func (NopSink) EmitExplosion(pos Vector3, c color.RGBA, vel Vector3) {}

// Explosion colors
var (
	ColorShipExplosion     = color.RGBA{R: 40, G: 255, B: 40, A: 255}
	ColorAsteroidExplosion = color.RGBA{R: 200, G: 180, B: 150, A: 255}
	ColorEnemyExplosion    = color.RGBA{R: 255, G: 80, B: 40, A: 255}
)
