package render

import (
	"math"
	"math/rand"

	"codeberg.org/mutker/ledmeter/internal/led"
)

const (
	jitterCarry       = 0.5
	wavePhaseOffset   = 0.16
	waveBaseStrength  = 0.6
	waveLevelStrength = 1.4
	waveLevelExponent = 1.2
	idleGlowThreshold = 3.0
	idleGlowBase      = 0.1
	idleGlowJitter    = 0.05
	idleGlowMax       = 0.15
	blinkDimGain      = 0.15
	peakMarkerGain    = 0.4
	maxOverdrive      = 2.0
)

// peakMarker is the indicator color for the decaying high-water mark,
// deliberately not a zone color so it reads as a marker.
var peakMarker = led.White

// Compositor layers the cosmetic effects over the base bar: per-LED jitter,
// a partially-lit frontier LED, a faint glow past the bar, a traveling scan
// wave, a blink on the topmost lit LED, and the final global brightness
// scale. Output is deterministic given the seed and the call sequence.
type Compositor struct {
	count      int
	brightness float64
	jitterAmt  float64
	waveStep   float64
	blinkTicks int
	palette    Palette
	jitter     []float64
	rng        *rand.Rand
}

func NewCompositor(count int, brightness, jitterIntensity, waveStep float64, blinkTicks int, seed int64) *Compositor {
	return &Compositor{
		count:      count,
		brightness: brightness,
		jitterAmt:  jitterIntensity,
		waveStep:   waveStep,
		blinkTicks: blinkTicks,
		palette:    NewPalette(count),
		jitter:     make([]float64, count),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Compose renders the frame for one tick. level is the smoothed utilization,
// litCount its rounded LED count, peakIndex the high-water LED position (-1
// when none). The frame always has exactly count pixels with every channel
// within [0, round(255*brightness)].
func (c *Compositor) Compose(base led.Frame, level float64, litCount, peakIndex, tick int) led.Frame {
	for i := range c.jitter {
		c.jitter[i] = c.jitter[i]*jitterCarry + (c.rng.Float64()*2-1)*c.jitterAmt
	}

	target := level / 100 * float64(c.count)
	full := int(target)
	phase := 0.0
	if c.waveStep > 0 {
		phase = math.Mod(float64(tick)*c.waveStep, 1.0)
	}

	blinkOn := true
	if c.blinkTicks > 1 {
		blinkOn = tick%c.blinkTicks < (c.blinkTicks+1)/2
	}

	frame := led.Blank(c.count)
	for i := 0; i < c.count; i++ {
		// Positions past the lit bar are off in the base frame but the
		// frontier and glow effects still need the zone hue.
		color := c.palette.ColorAt(i)
		if i < len(base) && !base[i].IsOff() {
			color = base[i]
		}

		gain := 0.0
		switch {
		case i < full:
			gain = 1.0
		case i == full:
			// Frontier LED: partial brightness plus jitter flicker.
			gain = clamp01(target - float64(full) + c.jitter[i])
		case i == full+1 && c.jitterAmt > 0 && level > idleGlowThreshold:
			// Faint glow just past the bar for a busier "data" look.
			gain = clampRange(idleGlowBase+idleGlowJitter*c.jitter[i], 0, idleGlowMax)
		}

		gain *= c.waveGain(i, phase, level)

		if i == peakIndex && peakIndex >= litCount {
			// Peak marker renders independently of the bar effects.
			frame[i] = peakMarker.Scale(peakMarkerGain * c.brightness)
			continue
		}

		if litCount > 0 && i == litCount-1 && !blinkOn {
			gain *= blinkDimGain
		}

		gain = clampRange(gain, 0, maxOverdrive)
		frame[i] = c.scale(color, gain)
	}

	return frame
}

// waveGain returns the scan-wave brightness multiplier for one LED. The wave
// is phase shifted along the strip and its amplitude grows with utilization.
// A zero wave step disables the overlay.
func (c *Compositor) waveGain(i int, phase, level float64) float64 {
	if c.waveStep <= 0 {
		return 1
	}

	norm := clamp01(level / 100)
	p := math.Mod(phase+float64(i)*wavePhaseOffset, 1.0)
	s := (math.Sin(p*2*math.Pi) + 1) / 2
	s *= s // sharpen the crest into a blip

	strength := waveBaseStrength + waveLevelStrength*math.Pow(norm, waveLevelExponent)

	return 1 + strength*(s-0.5)
}

// scale applies per-LED gain and the global brightness factor, clamping every
// channel to the scaled 8-bit ceiling so overdrive cannot exceed it.
func (c *Compositor) scale(color led.Color, gain float64) led.Color {
	ceiling := uint8(math.Round(255 * c.brightness))
	scaled := color.Scale(gain * c.brightness)

	if scaled.R > ceiling {
		scaled.R = ceiling
	}
	if scaled.G > ceiling {
		scaled.G = ceiling
	}
	if scaled.B > ceiling {
		scaled.B = ceiling
	}

	return scaled
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}

	return v
}
