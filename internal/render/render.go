package render

import (
	"math"
	"time"

	"codeberg.org/mutker/ledmeter/internal/config"
	"codeberg.org/mutker/ledmeter/internal/led"
)

// Options carries the tunables of the animation pipeline, with time-based
// settings already converted to ticks. A zero WaveStep disables the scan
// overlay; a zero BlinkTicks disables the blink.
type Options struct {
	LEDs       int
	Brightness float64
	Smoothing  float64
	Jitter     float64
	WaveStep   float64 // wave phase advance per tick
	BlinkTicks int     // full blink cycle length in ticks
	HoldTicks  int     // ticks before peak decay starts
	DecayTicks int     // ticks per peak decay step
	Seed       int64
}

// OptionsFromConfig derives tick-based options from the wall-clock
// configuration surface.
func OptionsFromConfig(cfg *config.Config) Options {
	intervalSec := float64(cfg.Interval) / 1000

	waveStep := 0.0
	if cfg.WaveSpeed > 0 {
		waveStep = intervalSec / cfg.WaveSpeed
	}

	blinkTicks := 0
	if cfg.BlinkFreq > 0 {
		blinkTicks = int(math.Round(1 / (cfg.BlinkFreq * intervalSec)))
	}

	return Options{
		LEDs:       cfg.LEDs,
		Brightness: cfg.Brightness,
		Smoothing:  cfg.Smoothing,
		Jitter:     cfg.Jitter,
		WaveStep:   waveStep,
		BlinkTicks: blinkTicks,
		HoldTicks:  cfg.PeakHold / cfg.Interval,
		DecayTicks: cfg.PeakDecay / cfg.Interval,
		Seed:       time.Now().UnixNano(),
	}
}

// State is the per-tick summary exposed for logging and telemetry.
type State struct {
	Level     float64
	LitCount  int
	Peak      int
	PeakIndex int
	Tick      int
}

// Renderer owns the whole animation state for the process: smoother, peak
// tracker, wave phase, jitter walk and tick counter. It is driven by exactly
// one goroutine, one call per tick.
type Renderer struct {
	count    int
	smoother *Smoother
	palette  Palette
	peak     *PeakTracker
	comp     *Compositor
	tick     int
	state    State
}

func New(opts Options) *Renderer {
	return &Renderer{
		count:    opts.LEDs,
		smoother: NewSmoother(opts.Smoothing),
		palette:  NewPalette(opts.LEDs),
		peak:     NewPeakTracker(opts.LEDs, opts.HoldTicks, opts.DecayTicks),
		comp: NewCompositor(
			opts.LEDs, opts.Brightness, opts.Jitter, opts.WaveStep, opts.BlinkTicks, opts.Seed,
		),
	}
}

// Advance runs one tick of the pipeline on a fresh raw reading and returns
// the frame to push to the sink.
func (r *Renderer) Advance(raw float64) led.Frame {
	return r.advance(r.smoother.Update(raw))
}

// AdvanceStale runs one tick reusing the last smoothed level, for ticks
// where the sampler failed.
func (r *Renderer) AdvanceStale() led.Frame {
	return r.advance(r.smoother.Value())
}

func (r *Renderer) advance(level float64) led.Frame {
	litCount := r.palette.LitCount(level)
	peak := r.peak.Update(litCount)

	peakIndex := -1
	if peak > 0 {
		peakIndex = peak - 1
	}

	base := r.palette.Base(litCount)
	frame := r.comp.Compose(base, level, litCount, peakIndex, r.tick)

	r.state = State{
		Level:     level,
		LitCount:  litCount,
		Peak:      peak,
		PeakIndex: peakIndex,
		Tick:      r.tick,
	}
	r.tick++

	return frame
}

// State returns the summary of the most recent tick.
func (r *Renderer) State() State {
	return r.state
}
