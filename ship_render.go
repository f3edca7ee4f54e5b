package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"

	"asteroids3d/game"
)

// drawShip draws the ship as a wireframe dart pointing along its heading,
// with a shield bubble while Pose.Shield is above zero.
func (r *screenRenderer) drawShip(p game.Pose) {
	forward := game.HeadingVector(p.Theta, p.Phi)
	th := p.Theta * math.Pi / 180
	right := game.Vector3{X: math.Cos(th), Y: math.Sin(th)}
	right = rotatePoint(right, forward, p.Roll*math.Pi/180)
	up := game.Vector3{
		X: forward.Y*right.Z - forward.Z*right.Y,
		Y: forward.Z*right.X - forward.X*right.Z,
		Z: forward.X*right.Y - forward.Y*right.X,
	}

	s := p.Scale
	nose := p.Position.Add(forward.Scale(s * shipNoseLength))
	tail := p.Position.Sub(forward.Scale(s * shipTailLength))
	left := tail.Sub(right.Scale(s * shipHalfWidth))
	rightWing := tail.Add(right.Scale(s * shipHalfWidth))
	fin := p.Position.Sub(forward.Scale(s * shipTailLength / 2)).Add(up.Scale(s * shipFinHeight))

	r.polyline([]game.Vector3{nose, left, rightWing}, true, colorShip)
	r.polyline([]game.Vector3{left, fin, rightWing}, false, colorShip)
	r.polyline([]game.Vector3{nose, fin}, false, colorShip)

	if p.Shield <= 0 {
		return
	}
	sx, sy, scale, ok := r.camera.Project(p.Position)
	if !ok {
		return
	}
	shield := colorShield
	shield.A = uint8(math.Min(p.Shield, 1) * 255)
	vector.StrokeCircle(r.dst, float32(sx), float32(sy), float32(s*shieldRadius*scale), lineWidth, shield, true)
}

// drawAsteroid draws two jagged great circles of the rock, tumbling about
// Pose.Axis.
func (r *screenRenderer) drawAsteroid(p game.Pose) {
	axis, ok := p.Axis.Normalize()
	if !ok {
		axis = game.Vector3{Z: 1}
	}
	angle := p.Angle * math.Pi / 180
	equator := make([]game.Vector3, asteroidPoints)
	meridian := make([]game.Vector3, asteroidPoints)
	for i := range asteroidPoints {
		a := fullCircle * float64(i) / asteroidPoints
		k := p.Scale * (1 + asteroidJitter*math.Sin(float64(i*i)*1.7))
		eq := game.Vector3{X: math.Cos(a) * k, Y: math.Sin(a) * k}
		me := game.Vector3{X: math.Cos(a) * k, Z: math.Sin(a) * k}
		equator[i] = p.Position.Add(rotatePoint(eq, axis, angle))
		meridian[i] = p.Position.Add(rotatePoint(me, axis, angle))
	}
	r.polyline(equator, true, p.Color)
	r.polyline(meridian, true, p.Color)
}

// drawSaucer draws a flat disc with a dome, spinning about its Y axis
func (r *screenRenderer) drawSaucer(p game.Pose) {
	axis, ok := p.Axis.Normalize()
	if !ok {
		axis = game.Vector3{Y: 1}
	}
	angle := p.Angle * math.Pi / 180
	rim := make([]game.Vector3, asteroidPoints)
	dome := make([]game.Vector3, asteroidPoints)
	for i := range asteroidPoints {
		a := fullCircle * float64(i) / asteroidPoints
		rimPt := game.Vector3{X: math.Cos(a) * p.Scale, Y: math.Sin(a) * p.Scale}
		domePt := game.Vector3{X: math.Cos(a) * p.Scale / 2, Y: math.Sin(a) * p.Scale / 2, Z: p.Scale / 3}
		rim[i] = p.Position.Add(rotatePoint(rimPt, axis, angle))
		dome[i] = p.Position.Add(rotatePoint(domePt, axis, angle))
	}
	r.polyline(rim, true, p.Color)
	r.polyline(dome, true, p.Color)

	bar := game.Vector3{X: p.Scale * saucerBarWidth / 2}
	r.polyline([]game.Vector3{
		p.Position.Sub(rotatePoint(bar, axis, angle)),
		p.Position.Add(rotatePoint(bar, axis, angle)),
	}, false, p.Color)
}

// drawHunter draws an octahedron
func (r *screenRenderer) drawHunter(p game.Pose) {
	axis, ok := p.Axis.Normalize()
	if !ok {
		axis = game.Vector3{Y: 1}
	}
	angle := p.Angle * math.Pi / 180
	s := p.Scale
	vertex := func(v game.Vector3) game.Vector3 {
		return p.Position.Add(rotatePoint(v, axis, angle))
	}
	top, bottom := vertex(game.Vector3{Z: s}), vertex(game.Vector3{Z: -s})
	ring := []game.Vector3{
		vertex(game.Vector3{X: s}),
		vertex(game.Vector3{Y: s}),
		vertex(game.Vector3{X: -s}),
		vertex(game.Vector3{Y: -s}),
	}
	r.polyline(ring, true, p.Color)
	for _, v := range ring {
		r.polyline([]game.Vector3{top, v, bottom}, false, p.Color)
	}
}
