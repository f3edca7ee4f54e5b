package game

import "fmt"

// ShipState is the flight state of the player ship
type ShipState int

const (
	// ShipInactive has controls disabled and nothing happening
	ShipInactive ShipState = iota
	// ShipActive is under normal player control
	ShipActive
	// ShipFlyingIn follows the entry curve from behind the camera
	ShipFlyingIn
	// ShipFlyingOut follows the exit curve back behind the camera
	ShipFlyingOut
	// ShipDead has been blown up
	ShipDead
)

// String returns the state name
func (s ShipState) String() string {
	switch s {
	case ShipInactive:
		return "inactive"
	case ShipActive:
		return "active"
	case ShipFlyingIn:
		return "flying-in"
	case ShipFlyingOut:
		return "flying-out"
	case ShipDead:
		return "dead"
	default:
		return fmt.Sprintf("ShipState(%d)", int(s))
	}
}

var shipTransitions = map[ShipState][]ShipState{
	ShipInactive:  {ShipFlyingIn, ShipDead},
	ShipDead:      {ShipFlyingIn},
	ShipFlyingIn:  {ShipActive, ShipDead},
	ShipActive:    {ShipFlyingOut, ShipDead},
	ShipFlyingOut: {ShipInactive, ShipDead},
}

// canTransition checks if a ship state change is allowed
func canTransition(from, to ShipState) bool {
	for _, s := range shipTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition is an in-progress curved flight: the ship pose follows curve
// until progress reaches its tick count, then the ship enters next.
type Transition struct {
	curve    Quadratic[Waypoint]
	progress int
	next     ShipState
}

// Progress returns the ticks elapsed on the curve
func (t *Transition) Progress() int {
	return t.progress
}

// Ticks returns the total curve length in ticks
func (t *Transition) Ticks() int {
	return t.curve.Ticks
}

// Done reports whether the curve has been fully traversed
func (t *Transition) Done() bool {
	return t.progress >= t.curve.Ticks
}
