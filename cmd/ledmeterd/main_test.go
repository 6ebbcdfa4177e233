package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/ledmeter/internal/config"
	"codeberg.org/mutker/ledmeter/internal/errors"
	"codeberg.org/mutker/ledmeter/internal/led"
	"codeberg.org/mutker/ledmeter/internal/load"
	"codeberg.org/mutker/ledmeter/internal/render"
	"codeberg.org/mutker/ledmeter/internal/telemetry"
)

type fakeSink struct {
	frames []led.Frame
	count  int
	closed bool
}

func (s *fakeSink) Write(frame led.Frame) error {
	copied := make(led.Frame, len(frame))
	copy(copied, frame)
	s.frames = append(s.frames, copied)

	return nil
}

func (s *fakeSink) Count() int { return s.count }

func (s *fakeSink) Close() error {
	s.closed = true

	return nil
}

type fakeSampler struct {
	levels []float64
	calls  int
	fail   bool
}

func (s *fakeSampler) Sample() (float64, error) {
	if s.fail {
		return 0, errors.New().New(load.ErrSampleFailed)
	}

	level := s.levels[s.calls%len(s.levels)]
	s.calls++

	return level, nil
}

func (s *fakeSampler) Name() string { return "fake" }

func (s *fakeSampler) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		LEDs:       8,
		Brightness: 0.15,
		Interval:   10,
		Smoothing:  1.0,
		Jitter:     0,
		WaveSpeed:  0,
		PeakHold:   30,
		PeakDecay:  10,
		BlinkFreq:  0,
		BootDelay:  1,
		Sink:       "term",
		Source:     "cpu",
	}
}

func testApp(t *testing.T, cfg *config.Config, sink *fakeSink, sampler *fakeSampler) *app {
	t.Helper()

	collector, err := telemetry.NewService(telemetry.Config{Enabled: false})
	require.NoError(t, err)

	return &app{
		cfg:       cfg,
		sink:      sink,
		sampler:   sampler,
		renderer:  render.New(render.OptionsFromConfig(cfg)),
		booter:    render.NewBooter(cfg.LEDs, cfg.Brightness),
		collector: collector,
	}
}

func TestTickWritesOneFrame(t *testing.T) {
	sink := &fakeSink{count: 8}
	sampler := &fakeSampler{levels: []float64{62.5}}
	a := testApp(t, testConfig(), sink, sampler)

	a.tick(context.Background())

	require.Len(t, sink.frames, 1)
	assert.Len(t, sink.frames[0], 8)
	assert.False(t, sink.frames[0].IsBlank())
}

func TestTickSamplerFailureReusesLevel(t *testing.T) {
	sink := &fakeSink{count: 8}
	sampler := &fakeSampler{levels: []float64{62.5}}
	a := testApp(t, testConfig(), sink, sampler)

	a.tick(context.Background())
	before := a.renderer.State()

	sampler.fail = true
	a.tick(context.Background())
	after := a.renderer.State()

	require.Len(t, sink.frames, 2)
	assert.Equal(t, before.Level, after.Level)
	assert.Equal(t, before.LitCount, after.LitCount)
	assert.Equal(t, before.Tick+1, after.Tick)
}

func TestCleanupBlanksAndCloses(t *testing.T) {
	sink := &fakeSink{count: 8}
	sampler := &fakeSampler{levels: []float64{100}}
	a := testApp(t, testConfig(), sink, sampler)

	a.tick(context.Background())
	a.cleanup()

	require.Len(t, sink.frames, 2)
	assert.True(t, sink.frames[len(sink.frames)-1].IsBlank())
	assert.True(t, sink.closed)
}

func TestLoopStopsOnCancelThenBlanksOnce(t *testing.T) {
	sink := &fakeSink{count: 8}
	sampler := &fakeSampler{levels: []float64{50}}
	a := testApp(t, testConfig(), sink, sampler)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.loop(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}

	a.cleanup()

	require.NotEmpty(t, sink.frames)
	blanks := 0
	for _, frame := range sink.frames {
		if frame.IsBlank() {
			blanks++
		}
	}
	assert.Equal(t, 1, blanks)
	assert.True(t, sink.frames[len(sink.frames)-1].IsBlank())
}

func TestBootAnimationRunsAllSteps(t *testing.T) {
	sink := &fakeSink{count: 8}
	sampler := &fakeSampler{levels: []float64{0}}
	a := testApp(t, testConfig(), sink, sampler)

	a.bootAnimation(context.Background())

	require.Len(t, sink.frames, a.booter.Steps())
	assert.True(t, sink.frames[len(sink.frames)-1].IsBlank())
}

func TestBootAnimationStopsOnCancel(t *testing.T) {
	sink := &fakeSink{count: 8}
	sampler := &fakeSampler{levels: []float64{0}}
	a := testApp(t, testConfig(), sink, sampler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a.bootAnimation(ctx)

	assert.LessOrEqual(t, len(sink.frames), 1)
}

func TestNewSamplerDefaultsToCPU(t *testing.T) {
	cfg := testConfig()
	cfg.Source = "cpu"

	sampler, err := newSampler(cfg)
	require.NoError(t, err)
	defer sampler.Close()

	assert.Equal(t, "cpu", sampler.Name())
}
