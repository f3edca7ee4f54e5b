package game

import (
	"fmt"
	"math"
)

// Ship constants
const (
	ShipAccel        = 0.1
	ShipRotSpeed     = 4.0
	ShipShieldFade   = 0.08
	ShipWrapDist     = 25.0
	ShipScale        = 15.0
	ShipRadius       = 2 * ShipScale
	ShipShieldsMax   = 5
	ShipLives        = 3
	ShipInitialTheta = 30.0

	// ShipNoseOffset is the distance from the ship center to its gun
	ShipNoseOffset = 15.0

	FlyInTicks  = 100
	FlyOutTicks = 200
)

// Ship is the player ship. Control inputs are honored only while it is Active.
type Ship struct {
	Body
	world *World
	state ShipState

	// theta is the heading on the field plane, 0 pointing +Y and increasing
	// counter clockwise. phi tilts the nose out of the plane. roll spins the hull
	// about its own forward axis.
	theta, phi, roll float64

	velocity    Vector3
	shields     int
	lives       int
	shieldFlash float64

	thrusting bool
	turning   int
	firing    bool
	trigger   bool

	weapon     *ProjectileSystem
	transition *Transition
}

// NewShip creates an inactive ship parked at the field center with full
// shields and all lives.
func NewShip(world *World) *Ship {
	return &Ship{
		Body:    Body{pos: world.Config.Center(), radius: ShipRadius},
		world:   world,
		state:   ShipInactive,
		theta:   ShipInitialTheta,
		shields: ShipShieldsMax,
		lives:   ShipLives,
		weapon:  NewProjectileSystem(world, GetWeaponConfig(WeaponTypeBlaster)),
	}
}

// State returns the current flight state
func (s *Ship) State() ShipState { return s.state }

// IsActive reports whether the ship is under player control and can take damage
func (s *Ship) IsActive() bool { return s.state == ShipActive }

// IsFlying reports whether the ship is on a fly-in or fly-out curve
func (s *Ship) IsFlying() bool { return s.state == ShipFlyingIn || s.state == ShipFlyingOut }

// IsDead reports whether the ship has been blown up
func (s *Ship) IsDead() bool { return s.state == ShipDead }

// Shields returns the remaining shield points
func (s *Ship) Shields() int { return s.shields }

// Lives returns the remaining lives
func (s *Ship) Lives() int { return s.lives }

// Velocity returns the velocity per tick
func (s *Ship) Velocity() Vector3 { return s.velocity }

// Weapon returns the ship's projectile system
func (s *Ship) Weapon() *ProjectileSystem { return s.weapon }

// Transition returns the active flight curve, nil outside fly-in and fly-out
func (s *Ship) Transition() *Transition { return s.transition }

// Orientation returns heading, tilt and roll in degrees
func (s *Ship) Orientation() (theta, phi, roll float64) {
	return s.theta, s.phi, s.roll
}

// ShieldFlash returns the shield bubble opacity
func (s *Ship) ShieldFlash() float64 { return s.shieldFlash }

// Direction returns the unit vector the nose points along
func (s *Ship) Direction() Vector3 {
	return HeadingVector(s.theta, s.phi)
}

// Thrust turns the engine on or off
func (s *Ship) Thrust(on bool) {
	if s.state != ShipActive {
		return
	}
	s.thrusting = on
}

// Turn starts turning toward a larger heading (1), a smaller one (-1) or stops (0)
func (s *Ship) Turn(dir int) {
	if s.state != ShipActive {
		return
	}
	switch {
	case dir > 0:
		s.turning = 1
	case dir < 0:
		s.turning = -1
	default:
		s.turning = 0
	}
}

// FireRequest asks for a single shot on the next update. The request is
// dropped when the weapon is cooling down or at capacity.
func (s *Ship) FireRequest() {
	if s.state != ShipActive {
		return
	}
	s.firing = true
}

// Trigger holds or releases the trigger. While held the ship fires as fast as
// the weapon allows.
func (s *Ship) Trigger(held bool) {
	if s.state != ShipActive {
		return
	}
	s.trigger = held
}

func (s *Ship) resetControls() {
	s.velocity = Vector3{}
	s.thrusting = false
	s.turning = 0
	s.firing = false
	s.trigger = false
}

func (s *Ship) setState(to ShipState) error {
	if !canTransition(s.state, to) {
		return fmt.Errorf("ship %s -> %s: %w", s.state, to, ErrIllegalTransition)
	}
	s.state = to
	return nil
}

func (s *Ship) waypoint() Waypoint {
	return Waypoint{Pos: s.pos, Theta: s.theta, Phi: s.phi}
}

func (s *Ship) setWaypoint(w Waypoint) {
	s.pos = w.Pos
	s.theta = w.Theta
	s.phi = w.Phi
}

// FlyIn starts the entry curve from just behind the camera to the field
// center.
func (s *Ship) FlyIn() error {
	if err := s.setState(ShipFlyingIn); err != nil {
		return err
	}
	s.resetControls()

	w, h, d := s.world.Width(), s.world.Height(), s.world.Config.CameraDistance()
	p0 := Waypoint{Pos: Vector3{w * 0.6, h / 2, d * 1.1}, Theta: 90, Phi: -90}
	p1 := Waypoint{Pos: Vector3{w * 0.6, h / 2, d * 0.3}, Theta: 90, Phi: -80}
	p2 := Waypoint{Pos: Vector3{w / 2, h / 2, 0}, Theta: 90, Phi: 0}

	s.setWaypoint(p0)
	s.transition = &Transition{curve: NewQuadratic(p0, p1, p2, FlyInTicks), next: ShipActive}
	return nil
}

// FlyOut starts the exit curve from the current pose back behind the camera
func (s *Ship) FlyOut() error {
	if err := s.setState(ShipFlyingOut); err != nil {
		return err
	}
	s.resetControls()

	w, h, d := s.world.Width(), s.world.Height(), s.world.Config.CameraDistance()
	p0 := s.waypoint()
	p2 := Waypoint{Pos: Vector3{w * 0.6, h / 2, d * 1.1}, Theta: 0, Phi: 90}
	p1 := Waypoint{
		Pos:   p0.Pos.Add(s.Direction().Scale(200)),
		Theta: (0.2*p0.Theta + 1.8*p2.Theta) / 2,
		Phi:   (0.2*p0.Phi + 1.8*p2.Phi) / 2,
	}

	s.transition = &Transition{curve: NewQuadratic(p0, p1, p2, FlyOutTicks), next: ShipInactive}
	return nil
}

// Damage applies a hit. With shields left it drains one shield whatever the
// amount and flashes the shield bubble. With no shields left the ship explodes, loses a
// life and is Dead. A dead ship ignores damage.
func (s *Ship) Damage(amount int) {
	if s.state == ShipDead {
		return
	}
	if s.shields == 0 {
		s.world.Particles.EmitExplosion(s.pos, ColorShipExplosion, Vector3{Y: 10})
		s.lives--
		s.transition = nil
		s.resetControls()
		s.state = ShipDead
		return
	}
	s.shields--
	s.shieldFlash = 1
}

// Renew prepares the ship for another life: shields are refilled. The ship
// stays where it is until FlyIn.
func (s *Ship) Renew() {
	s.shields = ShipShieldsMax
	s.shieldFlash = 0
}

// Update advances the ship by one tick
func (s *Ship) Update() {
	s.weapon.Update()

	switch s.state {
	case ShipActive:
		s.updateActive()
	case ShipFlyingIn, ShipFlyingOut:
		s.updateTransition()
	}

	if s.shieldFlash > 0 {
		s.shieldFlash = math.Max(0, s.shieldFlash-ShipShieldFade)
	}
}

func (s *Ship) updateActive() {
	if s.turning != 0 {
		s.theta = normalizeDegrees(s.theta + ShipRotSpeed*float64(s.turning))
		s.roll = s.theta
	}

	dir := s.Direction()
	if s.thrusting {
		s.velocity = s.velocity.Add(dir.Scale(ShipAccel))
		s.world.Particles.EmitThrust(s.pos.Sub(dir.Scale(4)), s.velocity.Sub(dir.Scale(2)))
	}

	s.pos = s.world.Wrap(s.pos.Add(s.velocity), ShipWrapDist)

	if s.firing || s.trigger {
		nose := s.pos.Add(dir.Scale(ShipNoseOffset))
		vel := dir.Scale(s.weapon.Weapon().Speed).Add(s.velocity)
		s.weapon.Fire(nose, vel)
		s.firing = false
	}
}

func (s *Ship) updateTransition() {
	t := s.transition
	if t == nil {
		return
	}
	dir := s.Direction()
	s.world.Particles.EmitThrust(s.pos.Sub(dir.Scale(4)), s.velocity.Sub(dir.Scale(2)))

	t.progress++
	s.roll += 2
	s.setWaypoint(t.curve.At(t.progress))

	if t.Done() {
		s.state = t.next
		s.transition = nil
	}
}

// Draw implements Entity
func (s *Ship) Draw(r Renderer) {
	s.weapon.Draw(r)
	if s.state == ShipDead {
		return
	}
	r.DrawModel(ModelShip, Pose{
		Position: s.pos,
		Scale:    ShipScale,
		Theta:    s.theta,
		Phi:      s.phi,
		Roll:     s.roll,
		Shield:   s.shieldFlash,
		Color:    ColorShipExplosion,
	})
}
