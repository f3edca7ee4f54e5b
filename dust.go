package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"asteroids3d/game"
)

// newStarfield scatters count stars behind the play field. Deeper stars are
// spread wider so the far layers still fill the screen. It draws from its own
// random source so the simulation sequence does not depend on the window.
func newStarfield(config game.Config, rng *rand.Rand, count int) []star {
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}
	stars := make([]star, count)
	center := config.Center()
	for i := range stars {
		depth := uniform(starDepthMin, starDepthMax)
		spread := 1 + depth/config.CameraDistance()
		stars[i] = star{
			pos: game.Vector3{
				X: center.X + uniform(-0.5, 0.5)*config.FieldWidth*spread,
				Y: center.Y + uniform(-0.5, 0.5)*config.FieldHeight*spread,
				Z: -depth,
			},
			radius: uniform(0.5, starRadiusMax),
		}
	}
	return stars
}

// drawStars draws the starfield behind everything else
func (g *Game) drawStars(screen *ebiten.Image) {
	for _, s := range g.stars {
		sx, sy, _, ok := g.camera.Project(s.pos)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(s.radius), colorStar, true)
	}
}
