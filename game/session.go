package game

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Option configures a Session
type Option func(*sessionOptions)

type sessionOptions struct {
	logger    zerolog.Logger
	levels    []Level
	particles ParticleSink
}

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// WithLevels replaces the built-in level table
func WithLevels(levels []Level) Option {
	return func(o *sessionOptions) {
		o.levels = levels
	}
}

// WithParticles sets the sink receiving thrust trails and explosions
func WithParticles(sink ParticleSink) Option {
	return func(o *sessionOptions) {
		o.particles = sink
	}
}

// Session is one game: the field population, the player ship and the level
// progression. It is the only owner of its collections and is not safe for
// concurrent use; Update and Draw must be called from the same goroutine.
type Session struct {
	world    *World
	logger   zerolog.Logger
	director *LevelDirector
	metrics  *sessionMetrics
	resolver CollisionResolver

	ship      *Ship
	asteroids []*Asteroid
	enemies   []*Enemy

	level     int
	phase     Phase
	phaseTick int
	levelTick int
	spawned   int
	score     int
	tick      uint64
}

// NewSession starts a game at level 1 with the ship flying in
func NewSession(config Config, opts ...Option) (*Session, error) {
	o := sessionOptions{
		logger: zerolog.Nop(),
		levels: DefaultLevels(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	world := NewWorld(config, o.particles)
	director, err := NewLevelDirector(world, o.levels)
	if err != nil {
		return nil, fmt.Errorf("level table: %w", err)
	}
	metrics, err := newSessionMetrics()
	if err != nil {
		return nil, err
	}

	s := &Session{
		world:    world,
		logger:   o.logger,
		director: director,
		metrics:  metrics,
		ship:     NewShip(world),
		phase:    PhaseFlyIn,
	}
	if err := s.startLevel(1); err != nil {
		return nil, err
	}
	if err := s.ship.FlyIn(); err != nil {
		return nil, err
	}
	return s, nil
}

// Update advances the game by one tick. It returns an error only when the
// session reaches an inconsistent state.
func (s *Session) Update() error {
	s.tick++
	s.metrics.tick()

	for _, a := range s.asteroids {
		a.Update()
	}
	for _, e := range s.enemies {
		e.Update()
	}
	s.ship.Update()

	batch := s.resolver.Resolve(s.ship, s.asteroids, s.enemies)
	s.asteroids, s.enemies = batch.Apply(s.asteroids, s.enemies)
	s.score += batch.Score
	s.metrics.recordBatch(s.level, batch)
	if batch.ShipDestroyed {
		s.logger.Info().
			Int("level", s.level).
			Int("lives", s.ship.Lives()).
			Msg("ship destroyed")
	}

	if u, ok := s.world.Particles.(ParticleUpdater); ok {
		u.Update()
	}

	if err := s.progress(); err != nil {
		s.logger.Error().Err(err).Stringer("phase", s.phase).Msg("progression failed")
		return fmt.Errorf("tick %d: %w", s.tick, err)
	}
	return nil
}

// Step samples input, applies it to the ship and runs one tick
func (s *Session) Step(input InputProvider) error {
	if input != nil {
		input.Update(s.Snapshot())
		ApplyInput(s.ship, input.Controls())
	}
	return s.Update()
}

// Draw draws every entity: asteroids first, then enemies, then the ship
func (s *Session) Draw(r Renderer) {
	for _, a := range s.asteroids {
		a.Draw(r)
	}
	for _, e := range s.enemies {
		e.Draw(r)
	}
	s.ship.Draw(r)
}

// Snapshot is a read-only view of the session for renderers, HUDs and input
// providers. Its slices are copies and stay valid after the next Update.
// Bullets spent this tick are left out.
type Snapshot struct {
	Ship      *Ship
	Asteroids []*Asteroid
	Enemies   []*Enemy
	Bullets   []*Bullet

	Level   int
	Phase   Phase
	Score   int
	Lives   int
	Shields int
	Tick    uint64
}

// Snapshot captures the current session state
func (s *Session) Snapshot() Snapshot {
	var bullets []*Bullet
	live := func(p *ProjectileSystem) {
		for _, b := range p.Bullets() {
			if !b.Expired() {
				bullets = append(bullets, b)
			}
		}
	}
	live(s.ship.Weapon())
	for _, e := range s.enemies {
		live(e.Weapon())
	}
	return Snapshot{
		Ship:      s.ship,
		Asteroids: append([]*Asteroid(nil), s.asteroids...),
		Enemies:   append([]*Enemy(nil), s.enemies...),
		Bullets:   bullets,
		Level:     s.level,
		Phase:     s.phase,
		Score:     s.score,
		Lives:     s.ship.Lives(),
		Shields:   s.ship.Shields(),
		Tick:      s.tick,
	}
}

// World returns the field description shared by the session entities
func (s *Session) World() *World { return s.world }

// Ship returns the player ship
func (s *Session) Ship() *Ship { return s.ship }

// Asteroids returns the live asteroids. The slice must not be modified.
func (s *Session) Asteroids() []*Asteroid { return s.asteroids }

// Enemies returns the live enemies. The slice must not be modified.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Level returns the current level number, starting at 1
func (s *Session) Level() int { return s.level }

// Phase returns the progression phase
func (s *Session) Phase() Phase { return s.phase }

// Score returns the points earned so far
func (s *Session) Score() int { return s.score }

// Tick returns the number of ticks run
func (s *Session) Tick() uint64 { return s.tick }

// GameOver reports whether the game has ended
func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }
