package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"codeberg.org/mutker/ledmeter/internal/config"
	"codeberg.org/mutker/ledmeter/internal/led"
	"codeberg.org/mutker/ledmeter/internal/load"
	"codeberg.org/mutker/ledmeter/internal/logger"
	"codeberg.org/mutker/ledmeter/internal/pid"
	"codeberg.org/mutker/ledmeter/internal/render"
	"codeberg.org/mutker/ledmeter/internal/telemetry"
)

var cfg *config.Config

// app bundles the resources owned by the frame driver loop.
type app struct {
	cfg       *config.Config
	sink      led.Sink
	sampler   load.Sampler
	renderer  *render.Renderer
	booter    *render.Booter
	collector telemetry.Collector
}

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write PID file")
	}
	defer pid.Remove()

	a, err := initApp(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if cfg.Boot {
		a.bootAnimation(ctx)
	}

	if err := a.loop(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
	a.cleanup()
}

func initApp(cfg *config.Config) (*app, error) {
	sink, err := led.Open(cfg)
	if err != nil {
		return nil, err
	}

	sampler, err := newSampler(cfg)
	if err != nil {
		sink.Close()
		return nil, err
	}

	tcfg := telemetry.DefaultConfig()
	tcfg.Enabled = cfg.Telemetry
	tcfg.DBPath = cfg.Database
	collector, err := telemetry.NewService(tcfg)
	if err != nil {
		sampler.Close()
		sink.Close()
		return nil, err
	}

	logger.Info().
		Str("sink", cfg.Sink).
		Str("source", sampler.Name()).
		Int("leds", cfg.LEDs).
		Int("interval_ms", cfg.Interval).
		Msg("ledmeter initialized")

	return &app{
		cfg:       cfg,
		sink:      sink,
		sampler:   sampler,
		renderer:  render.New(render.OptionsFromConfig(cfg)),
		booter:    render.NewBooter(cfg.LEDs, cfg.Brightness),
		collector: collector,
	}, nil
}

func newSampler(cfg *config.Config) (load.Sampler, error) {
	switch strings.ToLower(cfg.Source) {
	case "gpu":
		return load.NewGPU()
	default:
		return load.New()
	}
}

func (a *app) loop(ctx context.Context) error {
	interval := time.Duration(a.cfg.Interval) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

// tick runs one full pass of the pipeline: sample, render, push. Per-tick
// failures are downgraded to log-and-continue; only shutdown stops the loop.
func (a *app) tick(ctx context.Context) {
	raw, err := a.sampler.Sample()

	var frame led.Frame
	if err != nil {
		logger.Warn().Err(err).Msg("sampler read failed, reusing last level")
		frame = a.renderer.AdvanceStale()
		raw = a.renderer.State().Level
	} else {
		frame = a.renderer.Advance(raw)
	}

	if err := a.sink.Write(frame); err != nil {
		logger.Warn().Err(err).Msg("LED write failed, skipping frame")
	}

	state := a.renderer.State()
	a.logState(raw, state)

	snapshot := &telemetry.Snapshot{
		Timestamp: time.Now(),
		Source:    a.sampler.Name(),
		Raw:       raw,
		Smoothed:  state.Level,
		LitCount:  state.LitCount,
		Peak:      state.Peak,
	}
	if err := a.collector.Record(ctx, snapshot); err != nil {
		logger.Warn().Err(err).Msg("failed to record telemetry")
	}
}

// bootAnimation plays the one-shot startup sequence, pacing it with the
// configured step delay. Canceled cleanly on an early termination signal.
func (a *app) bootAnimation(ctx context.Context) {
	delay := time.Duration(a.cfg.BootDelay) * time.Millisecond

	logger.Info().Msg("Running boot animation")
	for step := 0; step < a.booter.Steps(); step++ {
		if err := a.sink.Write(a.booter.Frame(step)); err != nil {
			logger.Warn().Err(err).Msg("boot frame write failed")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

// cleanup leaves the strip dark and releases every resource the loop owned.
func (a *app) cleanup() {
	if err := a.sink.Write(led.Blank(a.cfg.LEDs)); err != nil {
		logger.Error().Err(err).Msg("failed to blank LED strip")
	}
	if err := a.sink.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close LED sink")
	}
	if err := a.sampler.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close sampler")
	}
	if err := a.collector.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close telemetry")
	}
	logger.Info().Msg("Exiting...")
}

func (a *app) logState(raw float64, state render.State) {
	if a.cfg.Debug {
		logger.Debug().
			Float64("raw", raw).
			Float64("smoothed", state.Level).
			Int("lit_count", state.LitCount).
			Int("peak", state.Peak).
			Int("peak_index", state.PeakIndex).
			Int("tick", state.Tick).
			Msg("")
	} else if a.cfg.Verbose {
		logger.Info().
			Float64("smoothed", state.Level).
			Int("lit_count", state.LitCount).
			Int("peak", state.Peak).
			Msg("")
	}
}
