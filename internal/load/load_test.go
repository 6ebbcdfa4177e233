package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{180, 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, clampPercent(tt.in), 1e-9)
	}
}

func TestCPUSampler(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "cpu", s.Name())

	value, err := s.Sample()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, value, 0.0)
	assert.LessOrEqual(t, value, 100.0)
}
