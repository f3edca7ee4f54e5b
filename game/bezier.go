package game

// Point is any value a curve can blend: it must support addition and scaling
type Point[T any] interface {
	Add(T) T
	Scale(float64) T
}

// Quadratic is a quadratic Bezier curve parameterized over a whole number of
// ticks instead of [0, 1].
type Quadratic[T Point[T]] struct {
	P0, P1, P2 T
	Ticks      int
}

// NewQuadratic creates a curve from p0 through the control point p1 to p2
// that takes ticks steps to traverse.
func NewQuadratic[T Point[T]](p0, p1, p2 T, ticks int) Quadratic[T] {
	return Quadratic[T]{P0: p0, P1: p1, P2: p2, Ticks: ticks}
}

// At computes the point at tick t. t is clamped to [0, Ticks].
func (q Quadratic[T]) At(t int) T {
	if q.Ticks <= 0 {
		return q.P2
	}
	f := float64(t) / float64(q.Ticks)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	u := 1 - f
	return q.P0.Scale(u * u).Add(q.P1.Scale(2 * u * f)).Add(q.P2.Scale(f * f))
}

// Waypoint is a ship pose sample: a position plus heading and tilt
type Waypoint struct {
	Pos   Vector3
	Theta float64
	Phi   float64
}

// Add returns w + o component-wise
func (w Waypoint) Add(o Waypoint) Waypoint {
	return Waypoint{Pos: w.Pos.Add(o.Pos), Theta: w.Theta + o.Theta, Phi: w.Phi + o.Phi}
}

// Scale returns w * s component-wise
func (w Waypoint) Scale(s float64) Waypoint {
	return Waypoint{Pos: w.Pos.Scale(s), Theta: w.Theta * s, Phi: w.Phi * s}
}
