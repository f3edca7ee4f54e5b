package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadraticEndpoints(t *testing.T) {
	q := NewQuadratic(Vector3{0, 0, 0}, Vector3{1, 2, 0}, Vector3{2, 0, 0}, 10)

	assert.Equal(t, Vector3{0, 0, 0}, q.At(0))
	assert.Equal(t, Vector3{2, 0, 0}, q.At(10))

	mid := q.At(5)
	assert.InDelta(t, 1.0, mid.X, 1e-12)
	assert.InDelta(t, 1.0, mid.Y, 1e-12)
}

func TestQuadraticClamps(t *testing.T) {
	q := NewQuadratic(Vector3{0, 0, 0}, Vector3{1, 2, 0}, Vector3{2, 0, 0}, 10)

	assert.Equal(t, q.At(0), q.At(-5))
	assert.Equal(t, q.At(10), q.At(50))

	empty := NewQuadratic(Vector3{}, Vector3{}, Vector3{5, 5, 5}, 0)
	assert.Equal(t, Vector3{5, 5, 5}, empty.At(0))
}

func TestQuadraticWaypoint(t *testing.T) {
	q := NewQuadratic(
		Waypoint{Theta: 90, Phi: -90},
		Waypoint{Theta: 90, Phi: -80},
		Waypoint{Pos: Vector3{500, 400, 0}, Theta: 90, Phi: 0},
		100,
	)
	end := q.At(100)
	assert.Equal(t, Vector3{500, 400, 0}, end.Pos)
	assert.Equal(t, 90.0, end.Theta)
	assert.Equal(t, 0.0, end.Phi)
}
