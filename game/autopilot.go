package game

import "math"

// Autopilot is an InputProvider that turns the ship toward the closest
// asteroid or enemy and shoots once it is lined up.
type Autopilot struct {
	// AimTolerance is the heading error in degrees under which it fires
	AimTolerance float64

	// ThrustRange is the target distance above which it thrusts
	ThrustRange float64

	controls Controls
}

// NewAutopilot creates an autopilot with default tuning
func NewAutopilot() *Autopilot {
	return &Autopilot{
		AimTolerance: 8,
		ThrustRange:  450,
	}
}

// Update picks a target and computes the controls for the next tick
func (a *Autopilot) Update(s Snapshot) {
	a.controls = Controls{}
	if s.Ship == nil || !s.Ship.IsActive() {
		return
	}
	pos := s.Ship.Position()

	target, dist, found := Vector3{}, math.Inf(1), false
	consider := func(e Entity) {
		if d := pos.Distance(e.Position()); d < dist {
			target, dist, found = e.Position(), d, true
		}
	}
	for _, ast := range s.Asteroids {
		consider(ast)
	}
	for _, e := range s.Enemies {
		consider(e)
	}
	if !found {
		return
	}

	theta, _, _ := s.Ship.Orientation()
	diff := normalizeDegrees(HeadingTo(pos, target) - theta)

	// Turning overshoots by up to one rotation step
	switch {
	case diff > ShipRotSpeed/2:
		a.controls.Turn = 1
	case diff < -ShipRotSpeed/2:
		a.controls.Turn = -1
	}
	a.controls.Trigger = math.Abs(diff) < a.AimTolerance
	a.controls.Thrust = dist > a.ThrustRange && math.Abs(diff) < a.AimTolerance
}

// Controls implements InputProvider
func (a *Autopilot) Controls() Controls {
	return a.controls
}

// HeadingTo returns the ship heading in degrees that points from one point to
// another on the field plane.
func HeadingTo(from, to Vector3) float64 {
	d := to.Sub(from)
	return math.Atan2(-d.X, d.Y) * 180 / math.Pi
}
