package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"asteroids3d/game"
)

// EnvPrefix is prepended to every environment override, e.g.
// ASTEROIDS3D_LOGLEVEL or ASTEROIDS3D_FIELD_WIDTH.
const EnvPrefix = "ASTEROIDS3D"

// WindowSettings holds the desktop window settings
type WindowSettings struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// FieldSettings holds the play field size in world units
type FieldSettings struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
	FOV    float64 `json:"fov" mapstructure:"fov"`
}

// HeadlessSettings holds the settings of the headless runner
type HeadlessSettings struct {
	// Ticks to run, 0 runs until interrupted
	Ticks int `json:"ticks" mapstructure:"ticks"`

	// Realtime paces ticks at TickInterval instead of running flat out
	Realtime bool `json:"realtime" mapstructure:"realtime"`

	// ReportEvery logs a progress line every that many ticks
	ReportEvery int `json:"reportEvery" mapstructure:"reportEvery"`
}

// LevelSettings is one level table entry as written in a config file
type LevelSettings struct {
	Speed     float64  `json:"speed" mapstructure:"speed"`
	Asteroids []int    `json:"asteroids" mapstructure:"asteroids"`
	Enemies   []string `json:"enemies" mapstructure:"enemies"`
}

// Settings is the complete runtime configuration
type Settings struct {
	LogLevel     string        `json:"logLevel" mapstructure:"logLevel"`
	TickInterval time.Duration `json:"tickInterval" mapstructure:"tickInterval"`
	Seed         int64         `json:"seed" mapstructure:"seed"`

	RespawnDelay       int `json:"respawnDelay" mapstructure:"respawnDelay"`
	NextLevelDelay     int `json:"nextLevelDelay" mapstructure:"nextLevelDelay"`
	EnemySpawnInterval int `json:"enemySpawnInterval" mapstructure:"enemySpawnInterval"`

	Window   WindowSettings   `json:"window" mapstructure:"window"`
	Field    FieldSettings    `json:"field" mapstructure:"field"`
	Headless HeadlessSettings `json:"headless" mapstructure:"headless"`

	// Levels replaces the built-in level table when not empty
	Levels []LevelSettings `json:"levels" mapstructure:"levels"`
}

func setDefaults(v *viper.Viper) {
	def := game.DefaultConfig()

	v.SetDefault("logLevel", "info")
	v.SetDefault("tickInterval", def.TickInterval.String())
	v.SetDefault("seed", 0)

	v.SetDefault("respawnDelay", def.RespawnDelay)
	v.SetDefault("nextLevelDelay", def.NextLevelDelay)
	v.SetDefault("enemySpawnInterval", def.EnemySpawnInterval)

	v.SetDefault("window.width", int(def.FieldWidth))
	v.SetDefault("window.height", int(def.FieldHeight))
	v.SetDefault("window.title", "Asteroids 3D")

	v.SetDefault("field.width", def.FieldWidth)
	v.SetDefault("field.height", def.FieldHeight)
	v.SetDefault("field.fov", def.FOV)

	v.SetDefault("headless.ticks", 3000)
	v.SetDefault("headless.realtime", false)
	v.SetDefault("headless.reportEvery", 500)
}

// Load builds the settings from defaults, the optional config file at path
// (JSON, TOML or YAML by extension) and ASTEROIDS3D_ environment variables,
// in increasing order of precedence.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks values the game cannot run with
func (s Settings) Validate() error {
	var errs []error
	if s.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tickInterval must be positive, got %s", s.TickInterval))
	}
	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", s.Field.Width, s.Field.Height))
	}
	if s.Field.FOV <= 0 || s.Field.FOV >= 180 {
		errs = append(errs, fmt.Errorf("field fov must be in (0, 180), got %v", s.Field.FOV))
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	return errors.Join(errs...)
}

// GameConfig converts the settings into the simulation configuration
func (s Settings) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.FieldWidth = s.Field.Width
	cfg.FieldHeight = s.Field.Height
	cfg.FOV = s.Field.FOV
	cfg.TickInterval = s.TickInterval
	cfg.RespawnDelay = s.RespawnDelay
	cfg.NextLevelDelay = s.NextLevelDelay
	cfg.EnemySpawnInterval = s.EnemySpawnInterval
	cfg.Seed = s.Seed
	return cfg
}

// LevelTable converts the configured levels. It returns the built-in table
// when no levels are configured.
func (s Settings) LevelTable() ([]game.Level, error) {
	if len(s.Levels) == 0 {
		return game.DefaultLevels(), nil
	}

	levels := make([]game.Level, 0, len(s.Levels))
	for i, ls := range s.Levels {
		l := game.Level{
			SpeedFactor:    ls.Speed,
			AsteroidCounts: ls.Asteroids,
		}
		for _, name := range ls.Enemies {
			kind, err := game.ParseEnemyKind(name)
			if err != nil {
				return nil, fmt.Errorf("level %d: %w", i+1, err)
			}
			l.EnemySchedule = append(l.EnemySchedule, kind)
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}
