package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"asteroids3d/game"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws a single line of HUD text with its top left corner at x, y
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// drawHUD draws the level, score, lives and shields, and the game over banner
func (g *Game) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	lines := []string{
		fmt.Sprintf("LEVEL %d", snap.Level),
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("LIVES %d  SHIELDS %d", snap.Lives, snap.Shields),
	}
	if g.input.Autopiloting() {
		lines = append(lines, "AUTOPILOT")
	}
	for i, line := range lines {
		drawText(screen, line, hudMarginX, float64(hudMarginY+i*hudLineHeight), colorHUD)
	}

	var banner string
	switch snap.Phase {
	case game.PhaseGameOver:
		banner = "GAME OVER - PRESS R"
	case game.PhaseTransitioningOut:
		banner = fmt.Sprintf("LEVEL %d COMPLETE", snap.Level)
	default:
		return
	}
	w, _ := text.Measure(banner, hudFace, 0)
	drawText(screen, banner, (float64(screenWidth)-w)/2, float64(screenHeight)/2, colorGameOver)
}
