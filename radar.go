package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"asteroids3d/game"
)

// radarLayout returns the top left corner and size of the minimap together
// with its world to radar scale.
func radarLayout(config game.Config) (x, y, w, h, scale float64) {
	scale = radarWidth / config.FieldWidth
	w = radarWidth
	h = config.FieldHeight * scale
	x = float64(screenWidth) - w - radarMargin
	y = radarMargin
	return x, y, w, h, scale
}

// drawRadar renders a minimap of the whole wrapped field in the top right
// corner: asteroids, enemies and the ship.
func (g *Game) drawRadar(screen *ebiten.Image, snap game.Snapshot) {
	config := g.session.World().Config
	x, y, w, h, scale := radarLayout(config)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorRadarBackdrop, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorRadarBorder, false)

	blip := func(pos game.Vector3, radius float64, clr color.Color) {
		px := pos.X * scale
		py := h - pos.Y*scale
		if px < 0 || px > w || py < 0 || py > h {
			return
		}
		r := math.Max(radius*scale, radarBlipMin)
		vector.DrawFilledCircle(screen, float32(x+px), float32(y+py), float32(r), clr, true)
	}

	for _, a := range snap.Asteroids {
		blip(a.Position(), a.Radius(), colorRadarRock)
	}
	for _, e := range snap.Enemies {
		blip(e.Position(), e.Radius(), colorRadarEnemy)
	}
	if snap.Ship != nil && !snap.Ship.IsDead() {
		blip(snap.Ship.Position(), snap.Ship.Radius(), colorRadarShip)
	}
}
