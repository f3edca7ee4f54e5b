package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"asteroids3d/config"
	"asteroids3d/game"
	"asteroids3d/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (json, yaml or toml)")
	ticks := flag.Int("ticks", -1, "ticks to simulate, overrides headless.ticks (0 runs until interrupted)")
	realtime := flag.Bool("realtime", false, "pace ticks at the configured tick interval")
	profileDir := flag.String("profile", "", "write a CPU profile and trace into this directory")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		l := logging.New("info", os.Stderr)
		l.Fatal().Err(err).Msg("failed to load config")
	}
	if *ticks >= 0 {
		settings.Headless.Ticks = *ticks
	}
	if *realtime {
		settings.Headless.Realtime = true
	}
	logger := logging.New(settings.LogLevel, os.Stderr)

	var prof *profiler
	if *profileDir != "" {
		prof, err = startProfiler(*profileDir, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to start profiler")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, settings, logger)
	stop()
	if prof != nil {
		if perr := prof.Stop(); perr != nil {
			logger.Error().Err(perr).Msg("failed to write profile")
		}
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("simulation failed")
	}
}

// run plays one session with the autopilot at the controls until the tick
// budget is spent, the game is over or ctx is cancelled.
func run(ctx context.Context, settings config.Settings, logger zerolog.Logger) error {
	levels, err := settings.LevelTable()
	if err != nil {
		return err
	}
	s, err := game.NewSession(settings.GameConfig(),
		game.WithLogger(logger),
		game.WithLevels(levels),
	)
	if err != nil {
		return err
	}
	pilot := game.NewAutopilot()
	h := settings.Headless

	logger.Info().
		Int("ticks", h.Ticks).
		Bool("realtime", h.Realtime).
		Int64("seed", settings.Seed).
		Msg("headless run started")

	onTick := func(snap game.Snapshot) error {
		if h.ReportEvery > 0 && snap.Tick%uint64(h.ReportEvery) == 0 {
			report(logger, snap)
		}
		if snap.Phase == game.PhaseGameOver {
			return game.ErrStopRun
		}
		if h.Ticks > 0 && snap.Tick >= uint64(h.Ticks) {
			return game.ErrStopRun
		}
		return nil
	}

	if h.Realtime {
		err = game.RunFixed(ctx, s, pilot, settings.GameConfig().TickInterval, onTick)
	} else {
		err = runFlatOut(ctx, s, pilot, onTick)
	}
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("interrupted")
		err = nil
	}

	snap := s.Snapshot()
	logger.Info().
		Uint64("tick", snap.Tick).
		Int("level", snap.Level).
		Int("score", snap.Score).
		Bool("gameOver", s.GameOver()).
		Msg("headless run finished")
	return err
}

// runFlatOut steps the session as fast as possible
func runFlatOut(ctx context.Context, s *game.Session, input game.InputProvider, onTick func(game.Snapshot) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(input); err != nil {
			return err
		}
		if err := onTick(s.Snapshot()); err != nil {
			if errors.Is(err, game.ErrStopRun) {
				return nil
			}
			return err
		}
	}
}

func report(logger zerolog.Logger, snap game.Snapshot) {
	logger.Info().
		Uint64("tick", snap.Tick).
		Int("level", snap.Level).
		Stringer("phase", snap.Phase).
		Int("score", snap.Score).
		Int("lives", snap.Lives).
		Int("asteroids", len(snap.Asteroids)).
		Int("enemies", len(snap.Enemies)).
		Msg("progress")
}
