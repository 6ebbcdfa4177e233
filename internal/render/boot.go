package render

import "codeberg.org/mutker/ledmeter/internal/led"

const (
	bootHeadGain  = 2.0
	bootTrailGain = 0.05
)

// Booter produces the one-shot startup animation: a progressive sweep of
// alternating orange and blue pixels with a dimmed trail, then a fade-out
// from the top down. The final step is always an all-off frame, so no boot
// pixel survives into the steady-state loop.
type Booter struct {
	count      int
	brightness float64
}

func NewBooter(count int, brightness float64) *Booter {
	return &Booter{count: count, brightness: brightness}
}

// Steps returns the total number of animation steps.
func (b *Booter) Steps() int {
	return 2 * b.count
}

// Frame renders the animation step. Steps beyond Steps()-1 stay blank.
func (b *Booter) Frame(step int) led.Frame {
	frame := led.Blank(b.count)

	switch {
	case step < 0:
	case step < b.count:
		// Fill phase: head brighter than steady state, trail dimmed.
		for j := 0; j < step; j++ {
			frame[j] = bootColor(j).Scale(bootTrailGain)
		}
		frame[step] = bootColor(step).Scale(b.brightness * bootHeadGain)
	case step < 2*b.count:
		// Fade phase: lit prefix shrinks one LED per step down to blank.
		lit := 2*b.count - 1 - step
		for j := 0; j < lit; j++ {
			frame[j] = bootColor(j).Scale(bootTrailGain)
		}
	}

	return frame
}

func bootColor(i int) led.Color {
	if i%2 == 0 {
		return led.Orange
	}

	return led.Blue
}
