package game

import (
	"errors"
	"fmt"
)

// Level describes the population of one level
type Level struct {
	// SpeedFactor is the max velocity of the level's asteroids
	SpeedFactor float64

	// AsteroidCounts holds how many asteroids of each size to create,
	// AsteroidCounts[0] being the count of size 1 asteroids
	AsteroidCounts []int

	// EnemySchedule lists the enemies entering the level, one per spawn interval
	EnemySchedule []EnemyKind
}

// DefaultLevels returns the built-in level table
func DefaultLevels() []Level {
	return []Level{
		{SpeedFactor: 1, AsteroidCounts: []int{0, 0, 2}},
		{SpeedFactor: 2, AsteroidCounts: []int{3, 2, 0}, EnemySchedule: []EnemyKind{EnemyKindSaucer}},
		{SpeedFactor: 3, AsteroidCounts: []int{5, 3, 1}, EnemySchedule: []EnemyKind{EnemyKindSaucer, EnemyKindSaucer}},
		{SpeedFactor: 4, AsteroidCounts: []int{0, 0, 0, 1}, EnemySchedule: []EnemyKind{EnemyKindSaucer, EnemyKindHunter}},
		{SpeedFactor: 5, AsteroidCounts: []int{0, 0, 2, 1}, EnemySchedule: []EnemyKind{EnemyKindHunter, EnemyKindSaucer, EnemyKindHunter}},
	}
}

// AsteroidTotal returns the number of asteroids the level starts with
func (l Level) AsteroidTotal() int {
	n := 0
	for _, c := range l.AsteroidCounts {
		n += c
	}
	return n
}

// Validate checks a level entry
func (l Level) Validate() error {
	if !finite(l.SpeedFactor) || l.SpeedFactor < 0 {
		return fmt.Errorf("speed factor %v: %w", l.SpeedFactor, ErrInvalidLevel)
	}
	if len(l.AsteroidCounts) > MaxAsteroidSize {
		return fmt.Errorf("%d asteroid sizes, at most %d: %w", len(l.AsteroidCounts), MaxAsteroidSize, ErrInvalidLevel)
	}
	for i, c := range l.AsteroidCounts {
		if c < 0 {
			return fmt.Errorf("negative count %d for size %d: %w", c, i+1, ErrInvalidLevel)
		}
	}
	for _, k := range l.EnemySchedule {
		if _, err := LookupEnemyKind(k); err != nil {
			return err
		}
	}
	return nil
}

// LevelDirector owns the level table and populates levels from it
type LevelDirector struct {
	world  *World
	levels []Level
}

// NewLevelDirector validates the table and creates a director for it
func NewLevelDirector(world *World, levels []Level) (*LevelDirector, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("empty level table: %w", ErrInvalidLevel)
	}
	var errs []error
	for i, l := range levels {
		if err := l.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("level %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &LevelDirector{world: world, levels: levels}, nil
}

// Len returns the number of table entries
func (d *LevelDirector) Len() int {
	return len(d.levels)
}

// Level returns the entry of level n, counting from 1. Past the end of the
// table the last entry repeats with its speed factor raised to n.
func (d *LevelDirector) Level(n int) (Level, error) {
	if n < 1 {
		return Level{}, fmt.Errorf("level %d: %w", n, ErrInvalidLevel)
	}
	if n <= len(d.levels) {
		return d.levels[n-1], nil
	}
	l := d.levels[len(d.levels)-1]
	l.SpeedFactor = float64(n)
	return l, nil
}

// CreateAsteroids instantiates the asteroids of level n at random positions
func (d *LevelDirector) CreateAsteroids(n int) ([]*Asteroid, error) {
	l, err := d.Level(n)
	if err != nil {
		return nil, err
	}
	asteroids := make([]*Asteroid, 0, l.AsteroidTotal())
	for i, count := range l.AsteroidCounts {
		for j := 0; j < count; j++ {
			a, err := NewAsteroid(d.world, i+1, l.SpeedFactor)
			if err != nil {
				return nil, fmt.Errorf("level %d: %w", n, err)
			}
			asteroids = append(asteroids, a)
		}
	}
	return asteroids, nil
}

// ScheduledEnemy returns the i-th scheduled enemy kind of level n. ok is false
// once the schedule is exhausted.
func (d *LevelDirector) ScheduledEnemy(n, i int) (kind EnemyKind, ok bool) {
	l, err := d.Level(n)
	if err != nil || i < 0 || i >= len(l.EnemySchedule) {
		return 0, false
	}
	return l.EnemySchedule[i], true
}
