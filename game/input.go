package game

// Controls is the control state requested for one tick
type Controls struct {
	Thrust bool

	// Turn is 1 to increase the heading angle, -1 to decrease it, 0 to hold it
	Turn int

	// Fire requests a single shot
	Fire bool

	// Trigger keeps firing while held
	Trigger bool
}

// InputProvider defines the interface for ship input: a keyboard, a replay or
// an autopilot.
type InputProvider interface {
	// Update samples the input source before a tick
	Update(s Snapshot)

	// Controls returns the controls sampled by the last Update
	Controls() Controls
}

// ApplyInput forwards controls to the ship. The ship ignores them unless it
// is Active.
func ApplyInput(ship *Ship, c Controls) {
	ship.Thrust(c.Thrust)
	ship.Turn(c.Turn)
	ship.Trigger(c.Trigger)
	if c.Fire {
		ship.FireRequest()
	}
}
