package game

// Batch collects the collection changes found during one collision pass.
// Nothing is removed or added while the scan iterates; Apply commits the
// whole batch afterwards.
type Batch struct {
	removeAsteroids []*Asteroid
	addAsteroids    []*Asteroid
	removeEnemies   []*Enemy
	staged          map[*Asteroid]bool

	// Score earned by player bullets during the pass
	Score int

	// Splits counts asteroids broken up during the pass
	Splits int

	// EnemiesDestroyed counts enemies shot down during the pass
	EnemiesDestroyed int

	// ShipDestroyed is set when the ship died during the pass
	ShipDestroyed bool
}

func newBatch() *Batch {
	return &Batch{staged: make(map[*Asteroid]bool)}
}

// Staged reports whether a is already scheduled for removal
func (b *Batch) Staged(a *Asteroid) bool {
	return b.staged[a]
}

// Removed returns the asteroids staged for removal
func (b *Batch) Removed() []*Asteroid { return b.removeAsteroids }

// Added returns the asteroid fragments staged for addition
func (b *Batch) Added() []*Asteroid { return b.addAsteroids }

// RemovedEnemies returns the enemies staged for removal
func (b *Batch) RemovedEnemies() []*Enemy { return b.removeEnemies }

// Empty reports whether the batch changes nothing
func (b *Batch) Empty() bool {
	return len(b.removeAsteroids) == 0 && len(b.addAsteroids) == 0 && len(b.removeEnemies) == 0
}

func (b *Batch) split(a *Asteroid) {
	b.staged[a] = true
	b.removeAsteroids = append(b.removeAsteroids, a)
	b.addAsteroids = append(b.addAsteroids, a.Split()...)
	b.Splits++
}

// Apply returns the collections with removals applied first and additions
// appended after, preserving the order of the survivors.
func (b *Batch) Apply(asteroids []*Asteroid, enemies []*Enemy) ([]*Asteroid, []*Enemy) {
	if len(b.removeAsteroids) > 0 {
		kept := asteroids[:0]
		for _, a := range asteroids {
			if !b.staged[a] {
				kept = append(kept, a)
			}
		}
		for i := len(kept); i < len(asteroids); i++ {
			asteroids[i] = nil
		}
		asteroids = kept
	}
	asteroids = append(asteroids, b.addAsteroids...)

	if len(b.removeEnemies) > 0 {
		gone := make(map[*Enemy]bool, len(b.removeEnemies))
		for _, e := range b.removeEnemies {
			gone[e] = true
		}
		kept := enemies[:0]
		for _, e := range enemies {
			if !gone[e] {
				kept = append(kept, e)
			}
		}
		for i := len(kept); i < len(enemies); i++ {
			enemies[i] = nil
		}
		enemies = kept
	}
	return asteroids, enemies
}

// CollisionResolver runs the per tick collision pass. All tests are circle
// against circle: two entities touch when their distance is below the sum of
// their radii. Collections are scanned in slice order, so the outcome of a
// tick only depends on the state going in.
type CollisionResolver struct{}

// Resolve performs, in order: ship bullets against asteroids, ship bullets
// against enemies, then while the ship is active the ship against asteroids
// and enemy bullets against the ship.
func (CollisionResolver) Resolve(ship *Ship, asteroids []*Asteroid, enemies []*Enemy) *Batch {
	b := newBatch()
	weapon := ship.Weapon()

	for _, bullet := range weapon.Bullets() {
		// A bullet breaks the first live asteroid it overlaps
		for _, a := range asteroids {
			if b.Staged(a) || !Colliding(bullet, a) {
				continue
			}
			weapon.Expire(bullet)
			b.Score += a.Score()
			b.split(a)
			break
		}
		if bullet.Expired() {
			continue
		}

		for _, e := range enemies {
			if e.Destroyed() || !Colliding(bullet, e) {
				continue
			}
			weapon.Expire(bullet)
			if e.Damage(weapon.Damage()) {
				b.removeEnemies = append(b.removeEnemies, e)
				b.Score += e.Config().Score
				b.EnemiesDestroyed++
			}
			break
		}
	}

	if !ship.IsActive() {
		return b
	}

	for _, a := range asteroids {
		if b.Staged(a) || !Colliding(ship, a) {
			continue
		}
		b.split(a)
		ship.Damage(1)
		if !ship.IsActive() {
			b.ShipDestroyed = ship.IsDead()
			return b
		}
	}

	for _, e := range enemies {
		for _, bullet := range e.Weapon().Bullets() {
			if bullet.Expired() || !Colliding(bullet, ship) {
				continue
			}
			e.Weapon().Expire(bullet)
			ship.Damage(e.Weapon().Damage())
			if !ship.IsActive() {
				b.ShipDestroyed = ship.IsDead()
				return b
			}
		}
	}

	// Ship against enemy hulls is not handled
	return b
}
