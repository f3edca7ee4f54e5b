package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"asteroids3d/config"
	"asteroids3d/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (json, yaml or toml)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		l := logging.New("info", os.Stderr)
		l.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.New(settings.LogLevel, os.Stderr)

	g, err := NewGame(settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start game")
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(g.ticksPerSecond())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game stopped")
	}
}
