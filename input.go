package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"asteroids3d/game"
)

// keyboardInput reads ship controls from the keyboard. P hands the ship over
// to the autopilot and back.
type keyboardInput struct {
	autopilot *game.Autopilot
	auto      bool
	controls  game.Controls
}

func newKeyboardInput() *keyboardInput {
	return &keyboardInput{autopilot: game.NewAutopilot()}
}

// Update implements game.InputProvider
func (k *keyboardInput) Update(s game.Snapshot) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		k.auto = !k.auto
	}
	if k.auto {
		k.autopilot.Update(s)
		k.controls = k.autopilot.Controls()
		return
	}

	turn := 0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		turn--
	}
	k.controls = game.Controls{
		Thrust:  ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Turn:    turn,
		Fire:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Trigger: ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

// Controls implements game.InputProvider
func (k *keyboardInput) Controls() game.Controls {
	return k.controls
}

// Autopiloting reports whether the autopilot is flying the ship
func (k *keyboardInput) Autopiloting() bool {
	return k.auto
}

// handleInput processes window level keys: Esc quits, Alt+Enter toggles
// fullscreen and R restarts after a game over.
func (g *Game) handleInput() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.session.GameOver() {
		restartPressed := ebiten.IsKeyPressed(ebiten.KeyR)
		if restartPressed && !g.prevRestart {
			if err := g.restart(); err != nil {
				return err
			}
		}
		g.prevRestart = restartPressed
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnterPressed && !g.prevAltEnter {
		fullscreen := ebiten.IsFullscreen()
		ebiten.SetFullscreen(!fullscreen)
		if fullscreen {
			monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
			ebiten.SetWindowSize(int(float64(monitorWidth)*windowedSizeRatio), int(float64(monitorHeight)*windowedSizeRatio))
		}
	}
	g.prevAltEnter = altEnterPressed
	return nil
}
