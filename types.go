package main

import (
	"github.com/rs/zerolog"

	"asteroids3d/config"
	"asteroids3d/game"
)

// star is a fixed point of the background starfield
type star struct {
	pos    game.Vector3
	radius float64
}

// spark is one particle of a thrust trail or explosion. Its color channels
// are kept in [0,1] and fade towards black.
type spark struct {
	pos   game.Vector3
	vel   game.Vector3
	color [3]float64
}

// Game adapts a simulation session to ebiten.
type Game struct {
	settings config.Settings
	logger   zerolog.Logger

	session *game.Session
	input   *keyboardInput
	sparks  *sparkSystem
	camera  *Camera
	stars   []star

	initialized  bool
	prevAltEnter bool
	prevRestart  bool
}
