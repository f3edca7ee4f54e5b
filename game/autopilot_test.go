package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingTo(t *testing.T) {
	assert.InDelta(t, 0, HeadingTo(Vector3{}, Vector3{Y: 10}), 1e-9)
	assert.InDelta(t, 90, HeadingTo(Vector3{}, Vector3{X: -10}), 1e-9)
	assert.InDelta(t, -90, HeadingTo(Vector3{}, Vector3{X: 10}), 1e-9)
}

func TestAutopilotTurnsTowardTarget(t *testing.T) {
	w, _ := testWorld(t)
	ship := activeShip(t, w)
	// Heading 90 points along -X, the rock is straight up
	rock := stillAsteroid(t, w, 1, ship.Position().Add(Vector3{Y: 200}))

	a := NewAutopilot()
	a.Update(Snapshot{Ship: ship, Asteroids: []*Asteroid{rock}})
	c := a.Controls()
	assert.Equal(t, -1, c.Turn)
	assert.False(t, c.Trigger)
}

func TestAutopilotFiresWhenLinedUp(t *testing.T) {
	w, _ := testWorld(t)
	ship := activeShip(t, w)
	rock := stillAsteroid(t, w, 1, ship.Position().Add(Vector3{X: -600}))
	near := stillAsteroid(t, w, 1, ship.Position().Add(Vector3{X: -100}))

	a := NewAutopilot()
	a.Update(Snapshot{Ship: ship, Asteroids: []*Asteroid{rock, near}})
	c := a.Controls()
	assert.Equal(t, 0, c.Turn)
	assert.True(t, c.Trigger)
	assert.False(t, c.Thrust)
}

func TestAutopilotIdleWhenShipInactive(t *testing.T) {
	w, _ := testWorld(t)
	ship := NewShip(w)
	rock := stillAsteroid(t, w, 1, Vector3{})

	a := NewAutopilot()
	a.Update(Snapshot{Ship: ship, Asteroids: []*Asteroid{rock}})
	assert.Equal(t, Controls{}, a.Controls())
}

func TestApplyInput(t *testing.T) {
	w, _ := testWorld(t)
	ship := activeShip(t, w)

	ApplyInput(ship, Controls{Thrust: true, Turn: 1, Fire: true})
	ship.Update()

	assert.NotZero(t, ship.Velocity())
	assert.Len(t, ship.Weapon().Bullets(), 1)
	theta, _, _ := ship.Orientation()
	assert.InDelta(t, 94, theta, 1e-9)
}
