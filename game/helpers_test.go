package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

type emitted struct {
	pos, vec Vector3
	color    color.RGBA
}

// recordingSink keeps every particle effect it receives
type recordingSink struct {
	thrusts    []emitted
	explosions []emitted
	updates    int
}

func (r *recordingSink) EmitThrust(pos, dir Vector3) {
	r.thrusts = append(r.thrusts, emitted{pos: pos, vec: dir})
}

func (r *recordingSink) EmitExplosion(pos Vector3, c color.RGBA, vel Vector3) {
	r.explosions = append(r.explosions, emitted{pos: pos, vec: vel, color: c})
}

func (r *recordingSink) Update() {
	r.updates++
}

// recordingRenderer counts draw calls per model
type recordingRenderer struct {
	models  map[Model]int
	bullets int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{models: make(map[Model]int)}
}

func (r *recordingRenderer) DrawModel(m Model, p Pose) {
	r.models[m]++
}

func (r *recordingRenderer) DrawBullet(pos Vector3, c color.RGBA) {
	r.bullets++
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func testWorld(t *testing.T) (*World, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	return NewWorld(testConfig(), sink), sink
}

// stillAsteroid creates an asteroid that never moves
func stillAsteroid(t *testing.T, w *World, size int, pos Vector3) *Asteroid {
	t.Helper()
	a, err := NewAsteroid(w, size, 0, WithPosition(pos))
	require.NoError(t, err)
	return a
}

// activeShip returns a ship that has completed its fly-in
func activeShip(t *testing.T, w *World) *Ship {
	t.Helper()
	s := NewShip(w)
	require.NoError(t, s.FlyIn())
	for i := 0; i < FlyInTicks; i++ {
		s.Update()
	}
	require.True(t, s.IsActive())
	return s
}

// newTestSession creates a session whose field holds a single stationary
// asteroid in a corner, far from the ship, and runs it until the ship is
// under control.
func newTestSession(t *testing.T, opts ...Option) (*Session, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	opts = append([]Option{WithParticles(sink)}, opts...)
	s, err := NewSession(testConfig(), opts...)
	require.NoError(t, err)

	s.asteroids = []*Asteroid{stillAsteroid(t, s.world, 1, Vector3{X: 50, Y: 50})}
	for i := 0; i < FlyInTicks; i++ {
		require.NoError(t, s.Update())
	}
	require.True(t, s.ship.IsActive())
	require.Equal(t, PhaseInLevel, s.Phase())
	return s, sink
}
