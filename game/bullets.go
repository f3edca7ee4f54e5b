package game

import "image/color"

// BulletWrapDist is the margin past the field edge at which bullets wrap
const BulletWrapDist = 25.0

// Bullet is a single projectile. Its time-to-live drops by exactly one per
// tick and the owning ProjectileSystem drops it once it reaches zero.
type Bullet struct {
	Body
	world    *World
	velocity Vector3
	ttl      int
	color    color.RGBA
}

// Velocity returns the bullet velocity per tick
func (b *Bullet) Velocity() Vector3 {
	return b.velocity
}

// TTL returns the remaining lifetime in ticks
func (b *Bullet) TTL() int {
	return b.ttl
}

// Color returns the owner color tag
func (b *Bullet) Color() color.RGBA {
	return b.color
}

// Expired reports whether the bullet will be removed on the next update
func (b *Bullet) Expired() bool {
	return b.ttl <= 0
}

// Update moves the bullet and burns one tick of lifetime
func (b *Bullet) Update() {
	b.pos = b.world.Wrap(b.pos.Add(b.velocity), BulletWrapDist)
	b.ttl--
}

// Draw implements Entity
func (b *Bullet) Draw(r Renderer) {
	r.DrawBullet(b.pos, b.color)
}

// ProjectileSystem manages the bullets of one shooter: a bounded pool, a
// cooldown between shots and lifetime expiry.
type ProjectileSystem struct {
	world    *World
	weapon   WeaponConfig
	bullets  []*Bullet
	cooldown int
}

// NewProjectileSystem creates an empty projectile system for the given weapon
func NewProjectileSystem(world *World, weapon WeaponConfig) *ProjectileSystem {
	return &ProjectileSystem{
		world:   world,
		weapon:  weapon,
		bullets: make([]*Bullet, 0, weapon.MaxBullets),
	}
}

// Weapon returns the weapon configuration
func (p *ProjectileSystem) Weapon() WeaponConfig {
	return p.weapon
}

// Damage returns the damage dealt by one bullet
func (p *ProjectileSystem) Damage() int {
	return p.weapon.Damage
}

// Bullets returns the live bullets in the order they were fired
func (p *ProjectileSystem) Bullets() []*Bullet {
	return p.bullets
}

// Cooldown returns the ticks left before the next shot is allowed
func (p *ProjectileSystem) Cooldown() int {
	return p.cooldown
}

// CanFire returns true if, according to the constraints, the shooter should
// be allowed to fire
func (p *ProjectileSystem) CanFire() bool {
	if len(p.bullets) >= p.weapon.MaxBullets {
		return false
	}
	return p.cooldown <= 0
}

// Fire spawns a bullet at origin travelling with velocity and restarts the
// cooldown. It is a no-op returning false while CanFire is false.
func (p *ProjectileSystem) Fire(origin, velocity Vector3) bool {
	if !p.CanFire() {
		return false
	}
	p.cooldown = p.weapon.Rate
	p.bullets = append(p.bullets, &Bullet{
		Body:     Body{pos: origin, radius: p.weapon.Radius},
		world:    p.world,
		velocity: velocity,
		ttl:      p.weapon.Lifetime,
		color:    p.weapon.Color,
	})
	return true
}

// Expire forces a bullet's lifetime to zero. It is removed on the next Update.
func (p *ProjectileSystem) Expire(b *Bullet) {
	b.ttl = 0
}

// Update advances the cooldown and every bullet, then drops expired bullets
func (p *ProjectileSystem) Update() {
	if p.cooldown > 0 {
		p.cooldown--
	}

	valid := p.bullets[:0]
	for _, b := range p.bullets {
		b.Update()
		if b.ttl > 0 {
			valid = append(valid, b)
		}
	}
	// Clear the tail so dropped bullets can be collected
	for i := len(valid); i < len(p.bullets); i++ {
		p.bullets[i] = nil
	}
	p.bullets = valid
}

// Draw draws every live bullet
func (p *ProjectileSystem) Draw(r Renderer) {
	for _, b := range p.bullets {
		b.Draw(r)
	}
}
