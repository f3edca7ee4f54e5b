package game

import "fmt"

// Phase is the session level progression phase
type Phase int

const (
	// PhaseFlyIn waits for the ship to finish its entry curve
	PhaseFlyIn Phase = iota
	// PhaseInLevel is normal play
	PhaseInLevel
	// PhaseRespawning counts down before a replacement ship flies in
	PhaseRespawning
	// PhaseTransitioningOut waits for the fly-out, then sets up the next level
	PhaseTransitioningOut
	// PhaseGameOver is final: the ship is dead with no lives left
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseFlyIn:
		return "fly-in"
	case PhaseInLevel:
		return "in-level"
	case PhaseRespawning:
		return "respawning"
	case PhaseTransitioningOut:
		return "transitioning-out"
	case PhaseGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var phaseTransitions = map[Phase][]Phase{
	PhaseFlyIn:            {PhaseInLevel},
	PhaseInLevel:          {PhaseRespawning, PhaseTransitioningOut, PhaseGameOver},
	PhaseRespawning:       {PhaseFlyIn},
	PhaseTransitioningOut: {PhaseFlyIn},
}

// CanTransition checks if a phase change is allowed
func (p Phase) CanTransition(to Phase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *Session) setPhase(to Phase) error {
	if !s.phase.CanTransition(to) {
		return fmt.Errorf("phase %s -> %s: %w", s.phase, to, ErrIllegalTransition)
	}
	s.logger.Debug().
		Stringer("from", s.phase).
		Stringer("to", to).
		Int("level", s.level).
		Msg("phase change")
	s.phase = to
	s.phaseTick = 0
	return nil
}

// fieldClear reports whether every asteroid and enemy has been destroyed.
// Enemies still waiting in the level schedule do not count.
func (s *Session) fieldClear() bool {
	return len(s.asteroids) == 0 && len(s.enemies) == 0
}

// progress runs the level state machine for one tick
func (s *Session) progress() error {
	switch s.phase {
	case PhaseFlyIn:
		if s.ship.IsActive() || s.ship.IsDead() {
			return s.setPhase(PhaseInLevel)
		}

	case PhaseInLevel:
		dead := s.ship.IsDead()
		clear := s.fieldClear()
		switch {
		case dead && s.ship.Lives() <= 0:
			s.logger.Info().Int("level", s.level).Int("score", s.score).Msg("game over")
			return s.setPhase(PhaseGameOver)
		case dead && clear:
			// Straight to the next level, there is no ship to fly out
			return s.setPhase(PhaseTransitioningOut)
		case dead:
			return s.setPhase(PhaseRespawning)
		case clear:
			if err := s.ship.FlyOut(); err != nil {
				return err
			}
			return s.setPhase(PhaseTransitioningOut)
		}
		return s.spawnScheduled()

	case PhaseRespawning:
		s.phaseTick++
		if s.phaseTick > s.world.Config.RespawnDelay {
			s.ship.Renew()
			if err := s.ship.FlyIn(); err != nil {
				return err
			}
			s.logger.Info().Int("lives", s.ship.Lives()).Msg("ship respawned")
			return s.setPhase(PhaseFlyIn)
		}

	case PhaseTransitioningOut:
		if s.ship.IsFlying() {
			s.phaseTick = 0
		} else {
			s.phaseTick++
		}
		if s.phaseTick >= s.world.Config.NextLevelDelay {
			return s.nextLevel()
		}
	}
	return nil
}

// nextLevel populates the following level and flies the ship back in
func (s *Session) nextLevel() error {
	s.metrics.levelCompleted(s.level)
	if err := s.startLevel(s.level + 1); err != nil {
		return err
	}
	if s.ship.IsDead() {
		s.ship.Renew()
	}
	if err := s.ship.FlyIn(); err != nil {
		return err
	}
	return s.setPhase(PhaseFlyIn)
}

// startLevel adds the asteroids of level n to the field
func (s *Session) startLevel(n int) error {
	asteroids, err := s.director.CreateAsteroids(n)
	if err != nil {
		return err
	}
	s.level = n
	s.levelTick = 0
	s.spawned = 0
	s.asteroids = append(s.asteroids, asteroids...)
	s.logger.Info().Int("level", n).Int("asteroids", len(asteroids)).Msg("level start")
	return nil
}

// spawnScheduled brings in the next scheduled enemy every spawn interval
func (s *Session) spawnScheduled() error {
	s.levelTick++
	interval := s.world.Config.EnemySpawnInterval
	if interval <= 0 || s.levelTick%interval != 0 {
		return nil
	}
	kind, ok := s.director.ScheduledEnemy(s.level, s.spawned)
	if !ok {
		return nil
	}
	e, err := NewEnemy(s.world, kind, s.world.EdgePosition(), s.ship)
	if err != nil {
		return err
	}
	s.spawned++
	s.enemies = append(s.enemies, e)
	s.logger.Debug().Stringer("kind", kind).Int("level", s.level).Msg("enemy spawned")
	return nil
}
