package game

import (
	"fmt"
	"image/color"
	"strings"
)

// EnemyKind defines different types of enemies
type EnemyKind int

const (
	EnemyKindSaucer EnemyKind = iota // Drifts toward the player and fires at its current position
	EnemyKindHunter                  // Faster, retargets more often and leads its shots
)

// EnemyKindConfig holds configuration for each enemy kind
type EnemyKindConfig struct {
	Kind   EnemyKind
	Model  Model
	Health int
	Speed  float64
	Radius float64
	Scale  float64

	// Spin is the model rotation in degrees per tick
	Spin float64

	// FirstRetarget is the countdown before the first heading change
	FirstRetarget int

	// RetargetInterval is the countdown between later heading changes
	RetargetInterval int

	// FireInterval is the countdown between shots
	FireInterval int

	// LeadTarget aims at the predicted intercept instead of the current position
	LeadTarget bool

	Weapon WeaponType
	Score  int
	Color  color.RGBA
}

// GetEnemyKindConfig returns configuration for an enemy kind
func GetEnemyKindConfig(kind EnemyKind) EnemyKindConfig {
	switch kind {
	case EnemyKindSaucer:
		return EnemyKindConfig{
			Kind:             EnemyKindSaucer,
			Model:            ModelSaucer,
			Health:           50,
			Speed:            3,
			Radius:           30,
			Scale:            20,
			Spin:             5,
			FirstRetarget:    100,
			RetargetInterval: 200,
			FireInterval:     150,
			Weapon:           WeaponTypeSaucerGun,
			Score:            200,
			Color:            color.RGBA{180, 180, 255, 255},
		}
	case EnemyKindHunter:
		return EnemyKindConfig{
			Kind:             EnemyKindHunter,
			Model:            ModelHunter,
			Health:           30,
			Speed:            4,
			Radius:           20,
			Scale:            14,
			Spin:             5,
			FirstRetarget:    100,
			RetargetInterval: 120,
			FireInterval:     90,
			LeadTarget:       true,
			Weapon:           WeaponTypeHunterGun,
			Score:            500,
			Color:            color.RGBA{255, 140, 60, 255},
		}
	default:
		return GetEnemyKindConfig(EnemyKindSaucer)
	}
}

// LookupEnemyKind returns the configuration of a known kind
func LookupEnemyKind(kind EnemyKind) (EnemyKindConfig, error) {
	switch kind {
	case EnemyKindSaucer, EnemyKindHunter:
		return GetEnemyKindConfig(kind), nil
	default:
		return EnemyKindConfig{}, fmt.Errorf("enemy kind %d: %w", int(kind), ErrUnknownEnemyKind)
	}
}

// String returns the kind name used in configuration files
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindSaucer:
		return "saucer"
	case EnemyKindHunter:
		return "hunter"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// ParseEnemyKind converts a configuration name into a kind
func ParseEnemyKind(name string) (EnemyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "saucer":
		return EnemyKindSaucer, nil
	case "hunter":
		return EnemyKindHunter, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownEnemyKind)
	}
}
