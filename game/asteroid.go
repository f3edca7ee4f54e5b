package game

import (
	"fmt"
	"math"
)

// MaxAsteroidSize is the largest asteroid size a level can ask for
const MaxAsteroidSize = 4

// SplitSpeedup multiplies the max velocity of asteroid fragments
const SplitSpeedup = 1.1

// Asteroid is a tumbling rock. Hitting it splits it into two smaller rocks
// until size 1 rocks vanish.
type Asteroid struct {
	Body
	world       *World
	size        int
	maxVelocity float64
	velocity    Vector3
	scale       float64
	wrapDist    float64

	axis      Vector3
	angle     float64
	spinSpeed float64
}

// AsteroidOption configures a new asteroid
type AsteroidOption func(*asteroidOptions)

type asteroidOptions struct {
	position    Vector3
	hasPosition bool
}

// WithPosition places the asteroid instead of picking a random position
func WithPosition(p Vector3) AsteroidOption {
	return func(o *asteroidOptions) {
		o.position = p
		o.hasPosition = true
	}
}

// AsteroidScale returns the model scale for an asteroid size
func AsteroidScale(size int) float64 {
	s := float64(size)
	return 3*s*s + 5*s
}

// NewAsteroid creates an asteroid of the given size whose velocity components
// are drawn uniformly from [-maxVelocity, maxVelocity] on the field plane.
func NewAsteroid(world *World, size int, maxVelocity float64, opts ...AsteroidOption) (*Asteroid, error) {
	if size < 1 || size > MaxAsteroidSize {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	if !finite(maxVelocity) || maxVelocity < 0 {
		return nil, fmt.Errorf("max velocity %v: %w", maxVelocity, ErrNonFinite)
	}

	var o asteroidOptions
	for _, opt := range opts {
		opt(&o)
	}
	pos := o.position
	if !o.hasPosition {
		pos = world.RandomPosition()
	} else if !pos.Finite() {
		return nil, fmt.Errorf("position %v: %w", pos, ErrNonFinite)
	}

	scale := AsteroidScale(size)
	a := &Asteroid{
		Body:        Body{pos: pos, radius: 1.5 * scale},
		world:       world,
		size:        size,
		maxVelocity: maxVelocity,
		scale:       scale,
		wrapDist:    2 * scale,
		velocity: Vector3{
			X: world.Uniform(-maxVelocity, maxVelocity),
			Y: world.Uniform(-maxVelocity, maxVelocity),
		},
		spinSpeed: world.Uniform(-5, 5),
	}
	if axis, ok := (Vector3{world.Uniform(-1, 1), world.Uniform(-1, 1), world.Uniform(-1, 1)}).Normalize(); ok {
		a.axis = axis
	} else {
		a.axis = Vector3{Z: 1}
	}
	return a, nil
}

// Size returns the asteroid size, 1 being the smallest
func (a *Asteroid) Size() int {
	return a.size
}

// MaxVelocity returns the velocity bound the asteroid was created with
func (a *Asteroid) MaxVelocity() float64 {
	return a.maxVelocity
}

// Velocity returns the velocity per tick
func (a *Asteroid) Velocity() Vector3 {
	return a.velocity
}

// Score returns the points awarded for shooting this asteroid
func (a *Asteroid) Score() int {
	switch a.size {
	case 1:
		return 100
	case 2:
		return 50
	case 3:
		return 20
	default:
		return 10
	}
}

// Update moves and tumbles the asteroid
func (a *Asteroid) Update() {
	a.pos = a.world.Wrap(a.pos.Add(a.velocity), a.wrapDist)
	a.angle = math.Mod(a.angle+a.spinSpeed, 360)
}

// Split breaks the asteroid. It always emits one explosion and returns two
// fragments one size smaller at the same position, or nothing for size 1.
func (a *Asteroid) Split() []*Asteroid {
	if a.size <= 0 {
		panic(fmt.Sprintf("split of asteroid with size %d", a.size))
	}
	a.world.Particles.EmitExplosion(a.pos, ColorAsteroidExplosion, a.velocity)
	if a.size == 1 {
		return nil
	}

	children := make([]*Asteroid, 0, 2)
	for i := 0; i < 2; i++ {
		child, err := NewAsteroid(a.world, a.size-1, a.maxVelocity*SplitSpeedup, WithPosition(a.pos))
		if err != nil {
			// Parent passed the same checks
			panic(err)
		}
		children = append(children, child)
	}
	return children
}

// Draw implements Entity
func (a *Asteroid) Draw(r Renderer) {
	r.DrawModel(ModelAsteroid, Pose{
		Position: a.pos,
		Scale:    a.scale,
		Axis:     a.axis,
		Angle:    a.angle,
		Color:    ColorAsteroidExplosion,
	})
}
