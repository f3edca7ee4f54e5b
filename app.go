package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"asteroids3d/config"
	"asteroids3d/game"
)

// NewGame creates a Game running a fresh session built from settings
func NewGame(settings config.Settings, logger zerolog.Logger) (*Game, error) {
	g := &Game{
		settings: settings,
		logger:   logger,
		input:    newKeyboardInput(),
		sparks:   newSparkSystem(sparkMaxCount, settings.Seed),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart replaces the session with a new one at level 1
func (g *Game) restart() error {
	levels, err := g.settings.LevelTable()
	if err != nil {
		return fmt.Errorf("invalid level table: %w", err)
	}
	session, err := game.NewSession(g.settings.GameConfig(),
		game.WithLogger(g.logger),
		game.WithLevels(levels),
		game.WithParticles(g.sparks),
	)
	if err != nil {
		return err
	}
	g.sparks.Clear()
	g.session = session
	g.logger.Info().Msg("new game")
	return nil
}

// ticksPerSecond converts the configured tick interval into an ebiten TPS
func (g *Game) ticksPerSecond() int {
	interval := g.session.World().Config.TickInterval
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	tps := int(time.Second / interval)
	if tps < 1 {
		return 1
	}
	return tps
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if !g.initialized {
		if screenWidth == 0 || screenHeight == 0 {
			screenWidth, screenHeight = g.settings.Window.Width, g.settings.Window.Height
		}
		g.camera = NewCamera(g.session.World().Config, float64(screenWidth), float64(screenHeight))
		g.stars = newStarfield(g.session.World().Config, g.sparks.rng, starCount)
		g.initialized = true
	}

	if err := g.handleInput(); err != nil {
		return err
	}
	if g.session.GameOver() {
		// Sparks keep fading on the game over screen
		g.sparks.Update()
		return nil
	}
	return g.session.Step(g.input)
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if g.camera == nil {
		return
	}
	g.drawStars(screen)
	g.session.Draw(newScreenRenderer(screen, g.camera))
	g.sparks.Draw(screen, g.camera)
	snap := g.session.Snapshot()
	g.drawRadar(screen, snap)
	g.drawHUD(screen, snap)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != screenWidth || outsideHeight != screenHeight {
		screenWidth, screenHeight = outsideWidth, outsideHeight
		if g.camera != nil {
			g.camera.Resize(float64(screenWidth), float64(screenHeight))
		}
	}
	return outsideWidth, outsideHeight
}
