package render_test

import (
	"math"
	"testing"

	"codeberg.org/mutker/ledmeter/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestSmootherSeedsOnFirstReading(t *testing.T) {
	s := render.NewSmoother(0.3)

	assert.InDelta(t, 47.0, s.Update(47.0), 1e-9, "first reading must seed directly")
	assert.InDelta(t, 47.0, s.Value(), 1e-9)
}

func TestSmootherStaysInRange(t *testing.T) {
	s := render.NewSmoother(0.3)

	inputs := []float64{0, 100, 13.5, 99.9, 0.1, 50, 100, 0}
	for _, raw := range inputs {
		got := s.Update(raw)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestSmootherConvergesMonotonically(t *testing.T) {
	s := render.NewSmoother(0.3)
	s.Update(0)

	const target = 80.0
	prev := s.Value()
	for i := 0; i < 50; i++ {
		got := s.Update(target)
		assert.Greater(t, got, prev, "must approach a constant input monotonically")
		assert.LessOrEqual(t, got, target)
		prev = got
	}

	assert.InDelta(t, target, prev, 0.01)
}

func TestSmootherNoSmoothingPassesThrough(t *testing.T) {
	s := render.NewSmoother(1.0)
	s.Update(10)

	assert.True(t, math.Abs(s.Update(62.5)-62.5) < 1e-9)
}
