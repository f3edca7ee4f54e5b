package game

import (
	"fmt"
	"math"
)

// EnemyDrag is the per tick velocity decay of enemy ships
const EnemyDrag = 0.995

// Target is what an enemy chases and shoots at
type Target interface {
	Position() Vector3
	Velocity() Vector3
}

// Enemy is a scripted hostile ship. It drifts toward its target, slowing
// down between course corrections, and shoots at it on a fixed cadence.
type Enemy struct {
	Body
	world  *World
	kind   EnemyKindConfig
	target Target

	health    int
	destroyed bool
	velocity  Vector3
	spin      float64

	retargetCountdown int
	fireCountdown     int

	weapon *ProjectileSystem
}

// NewEnemy creates an enemy of the given kind at pos hunting target
func NewEnemy(world *World, kind EnemyKind, pos Vector3, target Target) (*Enemy, error) {
	cfg, err := LookupEnemyKind(kind)
	if err != nil {
		return nil, err
	}
	if !pos.Finite() {
		return nil, fmt.Errorf("enemy position %v: %w", pos, ErrNonFinite)
	}
	return &Enemy{
		Body:              Body{pos: pos, radius: cfg.Radius},
		world:             world,
		kind:              cfg,
		target:            target,
		health:            cfg.Health,
		retargetCountdown: cfg.FirstRetarget,
		fireCountdown:     cfg.FireInterval,
		weapon:            NewProjectileSystem(world, GetWeaponConfig(cfg.Weapon)),
	}, nil
}

// Kind returns the enemy kind
func (e *Enemy) Kind() EnemyKind { return e.kind.Kind }

// Config returns the kind configuration
func (e *Enemy) Config() EnemyKindConfig { return e.kind }

// Health returns the remaining health
func (e *Enemy) Health() int { return e.health }

// Velocity returns the velocity per tick
func (e *Enemy) Velocity() Vector3 { return e.velocity }

// Weapon returns the enemy projectile system
func (e *Enemy) Weapon() *ProjectileSystem { return e.weapon }

// Destroyed reports whether the enemy has been blown up
func (e *Enemy) Destroyed() bool { return e.destroyed }

// Update advances the enemy by one tick
func (e *Enemy) Update() {
	e.spin = math.Mod(e.spin+e.kind.Spin, 360)

	e.pos = e.pos.Add(e.velocity)
	e.velocity = e.velocity.Scale(EnemyDrag)

	e.retargetCountdown--
	if e.retargetCountdown <= 0 {
		e.retargetCountdown = e.kind.RetargetInterval
		if dir, ok := e.target.Position().Sub(e.pos).XY().Normalize(); ok {
			e.velocity = dir.Scale(e.kind.Speed).Vec3(0)
		}
	}

	e.weapon.Update()

	e.fireCountdown--
	if e.fireCountdown <= 0 {
		e.fireCountdown = e.kind.FireInterval
		e.fire()
	}
}

func (e *Enemy) fire() {
	speed := e.weapon.Weapon().Speed
	aim := e.target.Position().XY()
	if e.kind.LeadTarget {
		aim = PredictiveAim(e.pos.XY(), aim, e.target.Velocity().XY(), speed)
	}
	dir, ok := aim.Sub(e.pos.XY()).Normalize()
	if !ok {
		return
	}
	e.weapon.Fire(e.pos, dir.Scale(speed).Vec3(0))
}

// Damage subtracts amount from the enemy health. It returns true exactly once,
// on the hit that destroys the enemy.
func (e *Enemy) Damage(amount int) bool {
	if e.destroyed {
		return false
	}
	e.health -= amount
	if e.health > 0 {
		return false
	}
	e.destroyed = true
	e.world.Particles.EmitExplosion(e.pos, ColorEnemyExplosion, e.velocity)
	return true
}

// Draw implements Entity
func (e *Enemy) Draw(r Renderer) {
	e.weapon.Draw(r)
	r.DrawModel(e.kind.Model, Pose{
		Position: e.pos,
		Scale:    e.kind.Scale,
		Axis:     Vector3{Y: 1},
		Angle:    e.spin,
		Color:    e.kind.Color,
	})
}
