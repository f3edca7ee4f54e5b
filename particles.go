package main

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"asteroids3d/game"
)

// sparkSystem implements game.ParticleSink and game.ParticleUpdater. Sparks
// are kept oldest first and only the faded run at the front of the queue is
// pruned, so a faded spark behind a live one waits until the front clears.
type sparkSystem struct {
	sparks []spark
	max    int
	rng    *rand.Rand
}

func newSparkSystem(max int, seed int64) *sparkSystem {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &sparkSystem{
		max: max,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// EmitThrust implements game.ParticleSink
func (ps *sparkSystem) EmitThrust(pos, dir game.Vector3) {
	n := sparkThrustMin + ps.rng.Intn(sparkThrustMax-sparkThrustMin+1)
	for range n {
		speed := sparkThrustSpeed + ps.rng.NormFloat64()*sparkThrustSpread
		ps.push(spark{
			pos: pos,
			vel: dir.Scale(speed),
			color: [3]float64{
				0.5 + ps.rng.Float64()/2,
				0.5 + ps.rng.Float64()/2,
				0.5 + ps.rng.Float64()/2,
			},
		})
	}
}

// EmitExplosion implements game.ParticleSink
func (ps *sparkSystem) EmitExplosion(pos game.Vector3, c color.RGBA, vel game.Vector3) {
	base := [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
	for range sparkExplosionSize {
		// uniform direction on the unit sphere
		z := 2*ps.rng.Float64() - 1
		a := fullCircle * ps.rng.Float64()
		r := math.Sqrt(1 - z*z)
		dir := game.Vector3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}

		ps.push(spark{
			pos:   pos,
			vel:   vel.Add(dir.Scale(sparkBurstSpeed * ps.rng.Float64())),
			color: base,
		})
	}
}

func (ps *sparkSystem) push(s spark) {
	if ps.max > 0 && len(ps.sparks) >= ps.max {
		ps.sparks = ps.sparks[1:]
	}
	ps.sparks = append(ps.sparks, s)
}

// Update implements game.ParticleUpdater
func (ps *sparkSystem) Update() {
	for i := range ps.sparks {
		s := &ps.sparks[i]
		s.pos = s.pos.Add(s.vel)
		for c := range s.color {
			s.color[c] -= sparkDecay[c]
		}
	}

	dead := 0
	for dead < len(ps.sparks) && ps.sparks[dead].faded() {
		dead++
	}
	if dead > 0 {
		ps.sparks = append(ps.sparks[:0], ps.sparks[dead:]...)
	}
}

// Len returns the number of live sparks
func (ps *sparkSystem) Len() int {
	return len(ps.sparks)
}

// Clear drops every spark
func (ps *sparkSystem) Clear() {
	ps.sparks = ps.sparks[:0]
}

// Draw projects every spark through the camera
func (ps *sparkSystem) Draw(dst *ebiten.Image, camera *Camera) {
	for _, s := range ps.sparks {
		sx, sy, scale, ok := camera.Project(s.pos)
		if !ok {
			continue
		}
		size := math.Max(sparkSize*scale, 1)
		vector.DrawFilledRect(dst, float32(sx-size/2), float32(sy-size/2), float32(size), float32(size), colorOf(s.color), false)
	}
}

func (s spark) faded() bool {
	return s.color[0] <= 0 && s.color[1] <= 0 && s.color[2] <= 0
}

// colorOf converts a spark color in [0,1] channels into a pixel color
func colorOf(c [3]float64) color.NRGBA {
	channel := func(f float64) uint8 {
		return uint8(math.Max(0, math.Min(f, 1)) * 255)
	}
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 255}
}
