package led

import (
	"codeberg.org/mutker/ledmeter/internal/errors"
	"codeberg.org/mutker/ledmeter/internal/logger"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

const spiChannels = 3

// spiSink drives a WS2812B strip through an SPI MOSI pin, encoding each LED
// bit as an NRZ symbol. This is the path used on boards where the strip data
// line hangs off the SPI header (Pi 5, Jetson Orin Nano).
type spiSink struct {
	port  spi.PortCloser
	dev   *nrzled.Dev
	buf   []byte
	count int
}

func newSPI(device string, hz, count int) (Sink, error) {
	errFactory := errors.New()

	if _, err := host.Init(); err != nil {
		return nil, errFactory.Wrap(ErrSinkInit, err)
	}

	port, err := spireg.Open(device)
	if err != nil {
		return nil, errFactory.Wrap(ErrSinkInit, err)
	}

	dev, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: count,
		Channels:  spiChannels,
		Freq:      physic.Frequency(hz) * physic.Hertz,
	})
	if err != nil {
		port.Close()
		return nil, errFactory.Wrap(ErrSinkInit, err)
	}

	logger.Debug().Msgf("Opened SPI LED sink on %q (%d LEDs)", port, count)

	return &spiSink{
		port:  port,
		dev:   dev,
		buf:   make([]byte, count*spiChannels),
		count: count,
	}, nil
}

func (s *spiSink) Count() int {
	return s.count
}

func (s *spiSink) Write(frame Frame) error {
	errFactory := errors.New()

	if len(frame) != s.count {
		return errFactory.WithData(ErrFrameMissize, len(frame))
	}

	for i, c := range frame {
		s.buf[i*spiChannels] = c.R
		s.buf[i*spiChannels+1] = c.G
		s.buf[i*spiChannels+2] = c.B
	}

	if _, err := s.dev.Write(s.buf); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	return nil
}

func (s *spiSink) Close() error {
	errFactory := errors.New()

	if err := s.dev.Halt(); err != nil {
		s.port.Close()
		return errFactory.Wrap(ErrSinkClosed, err)
	}

	if err := s.port.Close(); err != nil {
		return errFactory.Wrap(ErrSinkClosed, err)
	}

	return nil
}
