package led

import (
	"codeberg.org/mutker/ledmeter/internal/errors"
	"codeberg.org/mutker/ledmeter/internal/logger"
	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// pwmSink drives a WS2812B strip through the Raspberry Pi PWM/DMA peripheral.
type pwmSink struct {
	dev   *ws2811.WS2811
	count int
}

func newPWM(gpioPin, count int) (Sink, error) {
	errFactory := errors.New()

	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = gpioPin
	opt.Channels[0].LedCount = count
	// Global brightness scaling happens in the compositor; the controller
	// runs at full range so it does not double-attenuate.
	opt.Channels[0].Brightness = 255

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, errFactory.Wrap(ErrSinkInit, err)
	}

	if err := dev.Init(); err != nil {
		return nil, errFactory.Wrap(ErrSinkInit, err)
	}

	logger.Debug().Msgf("Opened PWM LED sink on GPIO %d (%d LEDs)", gpioPin, count)

	return &pwmSink{dev: dev, count: count}, nil
}

func (s *pwmSink) Count() int {
	return s.count
}

func (s *pwmSink) Write(frame Frame) error {
	errFactory := errors.New()

	if len(frame) != s.count {
		return errFactory.WithData(ErrFrameMissize, len(frame))
	}

	leds := s.dev.Leds(0)
	for i, c := range frame {
		leds[i] = packRGB(c)
	}

	if err := s.dev.Render(); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	return nil
}

func (s *pwmSink) Close() error {
	s.dev.Fini()
	return nil
}
