package game

import "image/color"

// WeaponType defines different types of weapons
type WeaponType int

const (
	WeaponTypeBlaster WeaponType = iota
	WeaponTypeSaucerGun
	WeaponTypeHunterGun
)

// WeaponConfig holds configuration for each weapon type
type WeaponConfig struct {
	Type WeaponType

	// MaxBullets caps how many bullets of one shooter can be alive at once
	MaxBullets int

	// Lifetime is the bullet time-to-live in ticks
	Lifetime int

	// Rate is the cooldown in ticks between two shots
	Rate int

	// Speed is the muzzle speed in world units per tick
	Speed float64

	// Damage dealt by one bullet
	Damage int

	Radius float64
	Color  color.RGBA
}

// GetWeaponConfig returns configuration for a weapon type
func GetWeaponConfig(weaponType WeaponType) WeaponConfig {
	switch weaponType {
	case WeaponTypeBlaster:
		return WeaponConfig{
			Type:       WeaponTypeBlaster,
			MaxBullets: 3,
			Lifetime:   50,
			Rate:       15,
			Speed:      5,
			Damage:     10,
			Radius:     5,
			Color:      color.RGBA{0, 255, 0, 255}, // Green
		}
	case WeaponTypeSaucerGun:
		return WeaponConfig{
			Type:       WeaponTypeSaucerGun,
			MaxBullets: 3,
			Lifetime:   100,
			Rate:       30,
			Speed:      4,
			Damage:     1,
			Radius:     5,
			Color:      color.RGBA{255, 0, 0, 255}, // Red
		}
	case WeaponTypeHunterGun:
		return WeaponConfig{
			Type:       WeaponTypeHunterGun,
			MaxBullets: 4,
			Lifetime:   80,
			Rate:       20,
			Speed:      5,
			Damage:     1,
			Radius:     5,
			Color:      color.RGBA{255, 100, 0, 255}, // Orange
		}
	default:
		return GetWeaponConfig(WeaponTypeBlaster)
	}
}
