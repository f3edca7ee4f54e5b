package game

import "image/color"

// Model identifies which mesh a renderer should draw for an entity
type Model int

const (
	ModelShip Model = iota
	ModelAsteroid
	ModelSaucer
	ModelHunter
)

// String returns the model name
func (m Model) String() string {
	switch m {
	case ModelShip:
		return "ship"
	case ModelAsteroid:
		return "asteroid"
	case ModelSaucer:
		return "saucer"
	case ModelHunter:
		return "hunter"
	default:
		return "unknown"
	}
}

// Pose is everything a renderer needs to place a model in world space
type Pose struct {
	Position Vector3
	Scale    float64

	// Theta is the heading on the field plane in degrees, 0 pointing +Y
	Theta float64

	// Phi tilts the model about its X axis in degrees
	Phi float64

	// Roll spins the model about its own forward axis in degrees
	Roll float64

	// Axis and Angle describe a free rotation, used by tumbling asteroids
	Axis  Vector3
	Angle float64

	// Shield is the opacity of the shield bubble, 0 when hidden
	Shield float64

	Color color.RGBA
}

// Renderer draws entities. The simulation calls it only from Draw and never
// issues graphics primitives on its own.
type Renderer interface {
	DrawModel(m Model, p Pose)
	DrawBullet(pos Vector3, c color.RGBA)
}
