package game

// Entity is anything that lives on the field: it has a position, a fixed
// collision radius, advances once per tick and can draw itself.
type Entity interface {
	Position() Vector3
	Radius() float64
	Update()
	Draw(r Renderer)
}

// Body holds the position and collision radius shared by every entity
type Body struct {
	pos    Vector3
	radius float64
}

// Position returns the entity position in world coordinates
func (b *Body) Position() Vector3 {
	return b.pos
}

// Radius returns the collision radius
func (b *Body) Radius() float64 {
	return b.radius
}

// DistanceTo calculates the distance to another entity
func (b *Body) DistanceTo(other Entity) float64 {
	return b.pos.Distance(other.Position())
}

// Colliding reports whether two entities overlap, using their summed radii
func Colliding(a, b Entity) bool {
	return a.Position().Distance(b.Position()) < a.Radius()+b.Radius()
}
