package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Vector3
		want Vector3
	}{
		{"inside", Vector3{500, 400, 3}, Vector3{500, 400, 3}},
		{"inside margin right", Vector3{1020, 400, 0}, Vector3{1020, 400, 0}},
		{"past right", Vector3{1026, 400, 0}, Vector3{-25, 400, 0}},
		{"past left", Vector3{-26, 400, 0}, Vector3{1025, 400, 0}},
		{"past top", Vector3{10, 826, 0}, Vector3{10, -25, 0}},
		{"past bottom", Vector3{10, -30, 7}, Vector3{10, 825, 7}},
		{"corner", Vector3{1100, -100, 0}, Vector3{-25, 825, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, 1000, 800, 25))
		})
	}
}

func TestWrapKeepsPositionsInBounds(t *testing.T) {
	for x := -200.0; x <= 1200; x += 7.5 {
		for y := -200.0; y <= 1000; y += 7.5 {
			p := Wrap(Vector3{x, y, 0}, 1000, 800, 25)
			assert.GreaterOrEqual(t, p.X, -25.0)
			assert.LessOrEqual(t, p.X, 1025.0)
			assert.GreaterOrEqual(t, p.Y, -25.0)
			assert.LessOrEqual(t, p.Y, 825.0)
		}
	}
}

func TestVectorNormalize(t *testing.T) {
	u, ok := Vector3{3, 4, 0}.Normalize()
	assert.True(t, ok)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)

	_, ok = Vector3{}.Normalize()
	assert.False(t, ok)

	_, ok = Vector2{}.Normalize()
	assert.False(t, ok)
}

func TestVectorFinite(t *testing.T) {
	assert.True(t, Vector3{1, 2, 3}.Finite())
	assert.False(t, Vector3{math.NaN(), 0, 0}.Finite())
	assert.False(t, Vector3{0, math.Inf(1), 0}.Finite())
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 10.0, normalizeDegrees(370))
	assert.Equal(t, -170.0, normalizeDegrees(190))
	assert.Equal(t, 170.0, normalizeDegrees(-190))
}
