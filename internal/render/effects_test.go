package render_test

import (
	"math"
	"math/rand"
	"testing"

	"codeberg.org/mutker/ledmeter/internal/led"
	"codeberg.org/mutker/ledmeter/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeFrameSizeAndChannelBound(t *testing.T) {
	const (
		numLEDs    = 8
		brightness = 0.15
	)
	ceiling := uint8(math.Round(255 * brightness))

	p := render.NewPalette(numLEDs)
	c := render.NewCompositor(numLEDs, brightness, 0.12, 0.09, 6, 1)
	rng := rand.New(rand.NewSource(7))

	for tick := 0; tick < 2000; tick++ {
		level := rng.Float64() * 100
		litCount := p.LitCount(level)
		peakIndex := litCount // one above the bar when in range
		if peakIndex >= numLEDs {
			peakIndex = numLEDs - 1
		}

		frame := c.Compose(p.Base(litCount), level, litCount, peakIndex, tick)

		require.Len(t, frame, numLEDs)
		for i, px := range frame {
			assert.LessOrEqual(t, px.R, ceiling, "tick %d LED %d R", tick, i)
			assert.LessOrEqual(t, px.G, ceiling, "tick %d LED %d G", tick, i)
			assert.LessOrEqual(t, px.B, ceiling, "tick %d LED %d B", tick, i)
		}
	}
}

func TestComposeReproducibleWithFixedSeed(t *testing.T) {
	const numLEDs = 8
	p := render.NewPalette(numLEDs)

	a := render.NewCompositor(numLEDs, 0.5, 0.12, 0.09, 6, 99)
	b := render.NewCompositor(numLEDs, 0.5, 0.12, 0.09, 6, 99)

	for tick := 0; tick < 200; tick++ {
		level := float64(tick % 101)
		litCount := p.LitCount(level)
		base := p.Base(litCount)

		assert.Equal(t,
			a.Compose(base, level, litCount, -1, tick),
			b.Compose(base, level, litCount, -1, tick),
			"tick %d", tick)
	}
}

func TestComposeWithoutEffectsIsExactZoneBar(t *testing.T) {
	const numLEDs = 8
	p := render.NewPalette(numLEDs)
	c := render.NewCompositor(numLEDs, 1.0, 0, 0, 0, 1)

	litCount := p.LitCount(62.5)
	require.Equal(t, 5, litCount)

	frame := c.Compose(p.Base(litCount), 62.5, litCount, litCount-1, 0)

	want := led.Frame{
		led.Green, led.Green,
		led.Yellow, led.Yellow,
		led.Orange,
		led.Off, led.Off, led.Off,
	}
	assert.Equal(t, want, frame)
}

func TestComposeBlinksTopmostLitLED(t *testing.T) {
	const numLEDs = 8
	p := render.NewPalette(numLEDs)
	c := render.NewCompositor(numLEDs, 1.0, 0, 0, 4, 1)

	litCount := p.LitCount(50)
	base := p.Base(litCount)

	on := c.Compose(base, 50, litCount, -1, 0)
	off := c.Compose(base, 50, litCount, -1, 2)

	assert.Equal(t, led.Yellow, on[litCount-1], "on half of the blink period")
	assert.Less(t, off[litCount-1].R, on[litCount-1].R, "off half must be dimmed")
	assert.False(t, off[litCount-1].IsOff(), "dimmed, not fully dark")
	assert.Equal(t, on[0], off[0], "blink only touches the topmost lit LED")
}

func TestComposePeakMarkerAboveBar(t *testing.T) {
	const numLEDs = 8
	p := render.NewPalette(numLEDs)
	c := render.NewCompositor(numLEDs, 1.0, 0, 0, 0, 1)

	litCount := 3
	peakIndex := 6
	frame := c.Compose(p.Base(litCount), 37.5, litCount, peakIndex, 0)

	px := frame[peakIndex]
	assert.False(t, px.IsOff(), "peak marker must be visible")
	assert.Equal(t, px.R, px.G, "marker is achromatic, not a zone color")
	assert.Equal(t, px.G, px.B)

	for i := litCount; i < numLEDs; i++ {
		if i != peakIndex {
			assert.True(t, frame[i].IsOff(), "LED %d", i)
		}
	}
}
