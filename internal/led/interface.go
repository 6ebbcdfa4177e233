package led

import (
	"strings"

	"codeberg.org/mutker/ledmeter/internal/config"
	"codeberg.org/mutker/ledmeter/internal/errors"
)

// Sink transfers frames to a physical (or simulated) LED strip. A Sink is
// acquired once at startup and owned exclusively by the frame driver.
type Sink interface {
	// Write pushes one frame to the strip, replacing its last-seen state.
	Write(frame Frame) error

	// Count returns the number of LEDs the sink drives.
	Count() int

	// Close releases the underlying device, leaving the strip dark.
	Close() error
}

// Open selects and initializes the sink variant named by the configuration.
// Failure here is fatal: the daemon cannot run without its strip.
func Open(cfg *config.Config) (Sink, error) {
	errFactory := errors.New()

	switch strings.ToLower(cfg.Sink) {
	case "spi":
		return newSPI(cfg.SPIDevice, cfg.SPIHz, cfg.LEDs)
	case "pwm":
		return newPWM(cfg.GPIOPin, cfg.LEDs)
	case "term":
		return newTerm(cfg.LEDs), nil
	default:
		return nil, errFactory.WithData(errors.ErrUnknownSink, cfg.Sink)
	}
}
