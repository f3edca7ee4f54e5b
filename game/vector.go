package game

import "math"

// Vector2 represents a 2D vector on the play field plane
type Vector2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Len returns the euclidean length of v
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v. ok is false for a zero-length vector.
func (v Vector2) Normalize() (unit Vector2, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vector2{}, false
	}
	return Vector2{v.X / l, v.Y / l}, true
}

// Vec3 lifts v into 3D at height z
func (v Vector2) Vec3(z float64) Vector3 {
	return Vector3{v.X, v.Y, z}
}

// Vector3 represents a position, velocity or direction in world space.
// Values are treated as immutable: every method returns a new vector.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the euclidean length of v
func (v Vector3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the euclidean distance between v and o
func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector of v. ok is false for a zero-length vector.
func (v Vector3) Normalize() (unit Vector3, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vector3{}, false
	}
	return v.Scale(1 / l), true
}

// XY drops the Z component
func (v Vector3) XY() Vector2 {
	return Vector2{v.X, v.Y}
}

// Finite reports whether every component is a finite number
func (v Vector3) Finite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Wrap applies toroidal wrap-around on the X/Y plane. A component that leaves
// [-margin, size+margin] re-enters from the opposite side just outside the
// visible field, so sprites do not pop at the seam. Z is left untouched.
func Wrap(p Vector3, width, height, margin float64) Vector3 {
	p.X = wrapAxis(p.X, width, margin)
	p.Y = wrapAxis(p.Y, height, margin)
	return p
}

func wrapAxis(v, size, margin float64) float64 {
	if v > size+margin {
		return -margin
	}
	if v < -margin {
		return size + margin
	}
	return v
}

// HeadingVector returns the unit vector for a heading theta on the field plane
// (0 along +Y, increasing counter clockwise) tilted out of the plane by phi. Both
// angles are in degrees.
func HeadingVector(theta, phi float64) Vector3 {
	th := degToRad(theta)
	ph := degToRad(phi)
	return Vector3{
		X: -math.Sin(th) * math.Cos(ph),
		Y: math.Cos(th) * math.Cos(ph),
		Z: math.Sin(ph),
	}
}

// normalizeDegrees normalizes an angle to the range [-180, 180]
func normalizeDegrees(angle float64) float64 {
	for angle > 180 {
		angle -= 360
	}
	for angle < -180 {
		angle += 360
	}
	return angle
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
