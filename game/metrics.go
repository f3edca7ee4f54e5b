package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "asteroids3d/game"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// sessionMetrics holds the session counters. They come from the global OTel
// meter, which is a no-op unless the binary installs a provider.
type sessionMetrics struct {
	splits    metric.Int64Counter
	destroyed metric.Int64Counter
	deaths    metric.Int64Counter
	levels    metric.Int64Counter
	ticks     metric.Int64Counter
}

func newSessionMetrics() (*sessionMetrics, error) {
	m := meter()
	sm := &sessionMetrics{}

	var err error
	sm.splits, err = m.Int64Counter(
		"asteroids3d.asteroids.split",
		metric.WithDescription("Asteroids broken up by bullets or ship impacts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating split counter: %w", err)
	}

	sm.destroyed, err = m.Int64Counter(
		"asteroids3d.enemies.destroyed",
		metric.WithDescription("Enemies shot down by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enemies counter: %w", err)
	}

	sm.deaths, err = m.Int64Counter(
		"asteroids3d.ship.deaths",
		metric.WithDescription("Player ship losses"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}

	sm.levels, err = m.Int64Counter(
		"asteroids3d.levels.completed",
		metric.WithDescription("Levels cleared"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating levels counter: %w", err)
	}

	sm.ticks, err = m.Int64Counter(
		"asteroids3d.ticks",
		metric.WithDescription("Simulation ticks run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	return sm, nil
}

func (sm *sessionMetrics) recordBatch(level int, b *Batch) {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.Int("level", level))
	if b.Splits > 0 {
		sm.splits.Add(ctx, int64(b.Splits), attrs)
	}
	if b.EnemiesDestroyed > 0 {
		sm.destroyed.Add(ctx, int64(b.EnemiesDestroyed), attrs)
	}
	if b.ShipDestroyed {
		sm.deaths.Add(ctx, 1, attrs)
	}
}

func (sm *sessionMetrics) levelCompleted(level int) {
	sm.levels.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("level", level)))
}

func (sm *sessionMetrics) tick() {
	sm.ticks.Add(context.Background(), 1)
}
