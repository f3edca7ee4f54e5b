package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipTransitionTable(t *testing.T) {
	tests := []struct {
		from, to ShipState
		want     bool
	}{
		{ShipInactive, ShipFlyingIn, true},
		{ShipDead, ShipFlyingIn, true},
		{ShipFlyingIn, ShipActive, true},
		{ShipActive, ShipFlyingOut, true},
		{ShipFlyingOut, ShipInactive, true},
		{ShipActive, ShipDead, true},
		{ShipFlyingIn, ShipDead, true},
		{ShipActive, ShipFlyingIn, false},
		{ShipInactive, ShipFlyingOut, false},
		{ShipDead, ShipActive, false},
		{ShipDead, ShipDead, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestShipDirection(t *testing.T) {
	w, _ := testWorld(t)
	s := NewShip(w)

	s.theta, s.phi = 0, 0
	d := s.Direction()
	assert.InDelta(t, 0, d.X, 1e-12)
	assert.InDelta(t, 1, d.Y, 1e-12)
	assert.InDelta(t, 0, d.Z, 1e-12)

	s.theta = 90
	d = s.Direction()
	assert.InDelta(t, -1, d.X, 1e-12)
	assert.InDelta(t, 0, d.Y, 1e-12)

	s.phi = 90
	d = s.Direction()
	assert.InDelta(t, 1, d.Z, 1e-12)
	assert.InDelta(t, 1, d.Len(), 1e-12)
}

func TestShipFlyIn(t *testing.T) {
	w, sink := testWorld(t)
	s := NewShip(w)
	require.NoError(t, s.FlyIn())
	assert.Equal(t, ShipFlyingIn, s.State())
	assert.True(t, s.IsFlying())

	d := w.Config.CameraDistance()
	assert.InDelta(t, 600, s.Position().X, 1e-9)
	assert.InDelta(t, d*1.1, s.Position().Z, 1e-9)
	theta, phi, _ := s.Orientation()
	assert.Equal(t, 90.0, theta)
	assert.Equal(t, -90.0, phi)

	for i := 0; i < FlyInTicks-1; i++ {
		s.Update()
		require.Equal(t, ShipFlyingIn, s.State())
	}
	s.Update()

	assert.Equal(t, ShipActive, s.State())
	assert.Nil(t, s.Transition())
	assert.InDelta(t, 500, s.Position().X, 1e-9)
	assert.InDelta(t, 400, s.Position().Y, 1e-9)
	assert.InDelta(t, 0, s.Position().Z, 1e-9)
	theta, phi, roll := s.Orientation()
	assert.InDelta(t, 90, theta, 1e-9)
	assert.InDelta(t, 0, phi, 1e-9)
	assert.Equal(t, 2.0*FlyInTicks, roll)
	assert.Len(t, sink.thrusts, FlyInTicks)
}

func TestShipIllegalTransitions(t *testing.T) {
	w, _ := testWorld(t)
	s := NewShip(w)

	err := s.FlyOut()
	assert.True(t, errors.Is(err, ErrIllegalTransition))
	assert.Equal(t, ShipInactive, s.State())

	s = activeShip(t, w)
	err = s.FlyIn()
	assert.True(t, errors.Is(err, ErrIllegalTransition))
	assert.Equal(t, ShipActive, s.State())
}

func TestShipFlyOut(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)
	s.Thrust(true)
	s.Update()
	require.NotZero(t, s.Velocity())

	require.NoError(t, s.FlyOut())
	assert.Equal(t, ShipFlyingOut, s.State())
	assert.Zero(t, s.Velocity())

	for i := 0; i < FlyOutTicks; i++ {
		s.Update()
	}
	assert.Equal(t, ShipInactive, s.State())
	assert.InDelta(t, 600, s.Position().X, 1e-9)
	assert.InDelta(t, 400, s.Position().Y, 1e-9)
	assert.InDelta(t, w.Config.CameraDistance()*1.1, s.Position().Z, 1e-9)

	// Inactive ships ignore controls
	s.Thrust(true)
	s.Update()
	assert.Zero(t, s.Velocity())
}

func TestShipControlsIgnoredOutsideActive(t *testing.T) {
	w, _ := testWorld(t)
	s := NewShip(w)
	require.NoError(t, s.FlyIn())

	s.Thrust(true)
	s.Turn(1)
	s.FireRequest()
	s.Trigger(true)
	for i := 0; i < FlyInTicks; i++ {
		s.Update()
	}
	require.True(t, s.IsActive())

	s.Update()
	assert.Zero(t, s.Velocity())
	assert.Empty(t, s.Weapon().Bullets())
}

func TestShipThrustAndTurn(t *testing.T) {
	w, sink := testWorld(t)
	s := activeShip(t, w)
	thrusts := len(sink.thrusts)

	s.Thrust(true)
	s.Update()
	assert.InDelta(t, -ShipAccel, s.Velocity().X, 1e-12)
	assert.InDelta(t, 0, s.Velocity().Y, 1e-12)
	assert.InDelta(t, 500-ShipAccel, s.Position().X, 1e-9)
	assert.Len(t, sink.thrusts, thrusts+1)

	s.Thrust(false)
	s.Turn(5)
	s.Update()
	theta, _, roll := s.Orientation()
	assert.InDelta(t, 94, theta, 1e-9)
	assert.InDelta(t, 94, roll, 1e-9)

	s.Turn(-3)
	s.Update()
	s.Update()
	theta, _, _ = s.Orientation()
	assert.InDelta(t, 86, theta, 1e-9)
}

func TestShipWraps(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)
	s.pos = Vector3{X: 2, Y: 400}
	s.velocity = Vector3{X: -30}

	s.Update()
	assert.Equal(t, w.Width()+ShipWrapDist, s.Position().X)
}

func TestShipFireRequest(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)

	s.FireRequest()
	s.Update()
	require.Len(t, s.Weapon().Bullets(), 1)

	b := s.Weapon().Bullets()[0]
	dir := s.Direction()
	nose := s.Position().Add(dir.Scale(ShipNoseOffset))
	assert.InDelta(t, nose.X, b.Position().X, 1e-9)
	assert.InDelta(t, nose.Y, b.Position().Y, 1e-9)
	assert.InDelta(t, dir.X*5, b.Velocity().X, 1e-9)
	assert.Equal(t, 50, b.TTL())

	// A request fires once
	for i := 0; i < 20; i++ {
		s.Update()
	}
	assert.Len(t, s.Weapon().Bullets(), 1)
}

func TestShipTriggerHeld(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)

	s.Trigger(true)
	for i := 0; i < 31; i++ {
		s.Update()
	}
	assert.Len(t, s.Weapon().Bullets(), 3)
}

func TestShipBulletInheritsVelocity(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)
	s.velocity = Vector3{X: 0, Y: 2}

	s.FireRequest()
	s.Update()
	require.Len(t, s.Weapon().Bullets(), 1)
	assert.InDelta(t, 2, s.Weapon().Bullets()[0].Velocity().Y, 1e-9)
}

func TestShipDamage(t *testing.T) {
	w, sink := testWorld(t)
	s := activeShip(t, w)

	for i := ShipShieldsMax; i > 0; i-- {
		s.Damage(1)
		require.True(t, s.IsActive())
		assert.Equal(t, i-1, s.Shields())
		assert.Equal(t, 1.0, s.ShieldFlash())
	}
	assert.Empty(t, sink.explosions)

	s.Damage(1)
	assert.True(t, s.IsDead())
	assert.Equal(t, ShipLives-1, s.Lives())
	require.Len(t, sink.explosions, 1)
	assert.Equal(t, ColorShipExplosion, sink.explosions[0].color)

	// Dead ships ignore further hits
	s.Damage(1)
	assert.Equal(t, ShipLives-1, s.Lives())
	assert.Len(t, sink.explosions, 1)
}

func TestShipDamageTakesOneShieldPerHit(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)
	require.Equal(t, ShipShieldsMax, s.Shields())

	s.Damage(3)
	assert.Equal(t, ShipShieldsMax-1, s.Shields())
	assert.True(t, s.IsActive())

	s.Damage(100)
	assert.Equal(t, ShipShieldsMax-2, s.Shields())
}

func TestShipShieldFlashFades(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)

	s.Damage(1)
	s.Update()
	assert.InDelta(t, 1-ShipShieldFade, s.ShieldFlash(), 1e-12)

	for i := 0; i < 20; i++ {
		s.Update()
	}
	assert.Zero(t, s.ShieldFlash())
}

func TestShipRenewAndFlyInAfterDeath(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)
	s.shields = 0
	s.Damage(1)
	require.True(t, s.IsDead())

	s.Renew()
	assert.Equal(t, ShipShieldsMax, s.Shields())
	assert.True(t, s.IsDead())

	require.NoError(t, s.FlyIn())
	assert.Equal(t, ShipFlyingIn, s.State())
}

func TestShipDraw(t *testing.T) {
	w, _ := testWorld(t)
	s := activeShip(t, w)
	s.FireRequest()
	s.Update()

	r := newRecordingRenderer()
	s.Draw(r)
	assert.Equal(t, 1, r.models[ModelShip])
	assert.Equal(t, 1, r.bullets)

	s.shields = 0
	s.Damage(1)
	r = newRecordingRenderer()
	s.Draw(r)
	assert.Zero(t, r.models[ModelShip])
}
