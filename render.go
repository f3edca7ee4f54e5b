package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"asteroids3d/game"
)

// Camera is a perspective camera looking down the -Z axis at the centre of
// the play field. At Z = 0 the field height fills the screen height.
type Camera struct {
	center   game.Vector3
	distance float64
	focal    float64 // pixels per world unit at distance 1

	width, height float64
}

// NewCamera creates a camera for the field described by config
func NewCamera(config game.Config, width, height float64) *Camera {
	c := &Camera{
		center:   config.Center(),
		distance: config.CameraDistance(),
	}
	c.Resize(width, height)
	return c
}

// Resize updates the screen size the camera projects onto
func (c *Camera) Resize(width, height float64) {
	c.width, c.height = width, height
	// scale at z = 0 is height / fieldHeight
	c.focal = c.distance * height / (2 * c.center.Y)
}

// Project converts a world position to screen coordinates. scale is the
// number of pixels per world unit at that depth. ok is false for points at
// or behind the eye.
func (c *Camera) Project(p game.Vector3) (sx, sy, scale float64, ok bool) {
	depth := c.distance - p.Z
	if depth <= 1 {
		return 0, 0, 0, false
	}
	scale = c.focal / depth
	sx = c.width/2 + (p.X-c.center.X)*scale
	sy = c.height/2 - (p.Y-c.center.Y)*scale
	return sx, sy, scale, true
}

// screenRenderer implements game.Renderer on an ebiten image
type screenRenderer struct {
	dst    *ebiten.Image
	camera *Camera
}

func newScreenRenderer(dst *ebiten.Image, camera *Camera) *screenRenderer {
	return &screenRenderer{dst: dst, camera: camera}
}

// DrawModel implements game.Renderer
func (r *screenRenderer) DrawModel(m game.Model, p game.Pose) {
	switch m {
	case game.ModelShip:
		r.drawShip(p)
	case game.ModelAsteroid:
		r.drawAsteroid(p)
	case game.ModelSaucer:
		r.drawSaucer(p)
	case game.ModelHunter:
		r.drawHunter(p)
	}
}

// DrawBullet implements game.Renderer
func (r *screenRenderer) DrawBullet(pos game.Vector3, c color.RGBA) {
	sx, sy, scale, ok := r.camera.Project(pos)
	if !ok {
		return
	}
	radius := math.Max(2*scale, 1.5)
	vector.DrawFilledCircle(r.dst, float32(sx), float32(sy), float32(radius), c, true)
}

// polyline projects world points and strokes the segments between them.
// closed joins the last point back to the first.
func (r *screenRenderer) polyline(points []game.Vector3, closed bool, clr color.Color) {
	n := len(points)
	if n < 2 {
		return
	}
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		a, b := points[i], points[(i+1)%n]
		ax, ay, _, okA := r.camera.Project(a)
		bx, by, _, okB := r.camera.Project(b)
		if !okA || !okB {
			continue
		}
		vector.StrokeLine(r.dst, float32(ax), float32(ay), float32(bx), float32(by), lineWidth, clr, true)
	}
}

// rotatePoint rotates p around axis (unit length) by angle radians
func rotatePoint(p, axis game.Vector3, angle float64) game.Vector3 {
	// Rodrigues' rotation formula
	cos, sin := math.Cos(angle), math.Sin(angle)
	cross := game.Vector3{
		X: axis.Y*p.Z - axis.Z*p.Y,
		Y: axis.Z*p.X - axis.X*p.Z,
		Z: axis.X*p.Y - axis.Y*p.X,
	}
	return p.Scale(cos).
		Add(cross.Scale(sin)).
		Add(axis.Scale(axis.Dot(p) * (1 - cos)))
}
