package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asteroids3d/game"
)

func TestThrustEmitsOneToFiveSparks(t *testing.T) {
	ps := newSparkSystem(0, 1)
	for range 50 {
		before := ps.Len()
		ps.EmitThrust(game.Vector3{}, game.Vector3{Y: -1})
		n := ps.Len() - before
		assert.GreaterOrEqual(t, n, sparkThrustMin)
		assert.LessOrEqual(t, n, sparkThrustMax)
	}
	for _, s := range ps.sparks {
		for _, c := range s.color {
			assert.GreaterOrEqual(t, c, 0.5)
			assert.LessOrEqual(t, c, 1.0)
		}
	}
}

func TestExplosionSparksFadeAndArePruned(t *testing.T) {
	ps := newSparkSystem(0, 1)
	ps.EmitExplosion(game.Vector3{X: 10}, game.ColorEnemyExplosion, game.Vector3{Y: 1})
	require.Equal(t, sparkExplosionSize, ps.Len())

	ps.Update()
	assert.Equal(t, sparkExplosionSize, ps.Len())
	for _, s := range ps.sparks {
		assert.Less(t, s.color[1], float64(game.ColorEnemyExplosion.G)/255)
	}

	// red fades slowest: 1.0 / 0.001 ticks
	for range 1001 {
		ps.Update()
	}
	assert.Zero(t, ps.Len())
}

func TestSparkCapDropsOldest(t *testing.T) {
	ps := newSparkSystem(sparkExplosionSize, 1)
	ps.EmitExplosion(game.Vector3{}, game.ColorShipExplosion, game.Vector3{})
	ps.EmitExplosion(game.Vector3{X: 99}, game.ColorShipExplosion, game.Vector3{})
	require.Equal(t, sparkExplosionSize, ps.Len())
	assert.Equal(t, 99.0, ps.sparks[0].pos.X)
}

func TestClear(t *testing.T) {
	ps := newSparkSystem(0, 1)
	ps.EmitThrust(game.Vector3{}, game.Vector3{X: 1})
	ps.Clear()
	assert.Zero(t, ps.Len())
}

func TestFadedSparkWaitsBehindLiveOne(t *testing.T) {
	ps := newSparkSystem(0, 1)
	ps.push(spark{color: [3]float64{0.1, 0, 0}})
	ps.push(spark{color: [3]float64{0.005, 0, 0}})

	for range 20 {
		ps.Update()
	}
	require.Equal(t, 2, ps.Len())
	assert.True(t, ps.sparks[1].faded())
	assert.False(t, ps.sparks[0].faded())

	for range 100 {
		ps.Update()
	}
	assert.Zero(t, ps.Len())
}
