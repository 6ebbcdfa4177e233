package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/ledmeter/internal/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultLEDs       = 8
	defaultBrightness = 0.15
	defaultInterval   = 80 // milliseconds
	defaultSmoothing  = 0.3
	defaultJitter     = 0.12
	defaultWaveSpeed  = 0.9 // seconds per scan cycle
	defaultPeakHold   = 1200
	defaultPeakDecay  = 400
	defaultBlinkFreq  = 2.0
	defaultBootDelay  = 200
	defaultSPIHz      = 2500000
	defaultGPIOPin    = 18
	defaultDBPath     = "/var/lib/ledmeter/telemetry.db"
)

type Config struct {
	LEDs       int
	Brightness float64
	Interval   int // tick period in milliseconds
	Smoothing  float64
	Jitter     float64
	WaveSpeed  float64
	PeakHold   int // milliseconds before peak decay starts
	PeakDecay  int // milliseconds per decay step
	BlinkFreq  float64
	Boot       bool
	BootDelay  int // milliseconds per boot animation step
	Sink       string
	SPIDevice  string
	SPIHz      int
	GPIOPin    int
	Source     string
	Telemetry  bool
	Database   string
	Debug      bool
	Verbose    bool
}

func Load() (*Config, error) {
	errFactory := errors.New()
	config := &Config{}

	v := viper.New()
	v.SetDefault("leds", defaultLEDs)
	v.SetDefault("brightness", defaultBrightness)
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("smoothing", defaultSmoothing)
	v.SetDefault("jitter", defaultJitter)
	v.SetDefault("wavespeed", defaultWaveSpeed)
	v.SetDefault("peakhold", defaultPeakHold)
	v.SetDefault("peakdecay", defaultPeakDecay)
	v.SetDefault("blinkfreq", defaultBlinkFreq)
	v.SetDefault("boot", true)
	v.SetDefault("bootdelay", defaultBootDelay)
	v.SetDefault("sink", "spi")
	v.SetDefault("spidevice", "")
	v.SetDefault("spihz", defaultSPIHz)
	v.SetDefault("gpiopin", defaultGPIOPin)
	v.SetDefault("source", "cpu")
	v.SetDefault("telemetry", false)
	v.SetDefault("database", defaultDBPath)

	// Define flags
	flags := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Int("leds", defaultLEDs, "Number of LEDs on the strip")
	flags.Float64("brightness", defaultBrightness, "Global brightness factor (0-1)")
	flags.Int("interval", defaultInterval, "Update interval in milliseconds")
	flags.Float64("smoothing", defaultSmoothing, "Smoothing factor (0-1, lower is smoother)")
	flags.Float64("jitter", defaultJitter, "Jitter intensity (0-1)")
	flags.String("sink", "spi", "LED sink: spi, pwm or term")
	flags.String("source", "cpu", "Utilization source: cpu or gpu")
	flags.Bool("boot", true, "Run the boot animation on startup")
	flags.Bool("telemetry", false, "Record per-tick snapshots to the database")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// Load configuration from file
	if path := os.Getenv("LEDMETER_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ledmeter.conf")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Override config file values with command line flags
	flags.Visit(func(f *pflag.Flag) {
		v.Set(f.Name, f.Value.String())
	})

	// Unmarshal the configuration
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Set log level based on config
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if config.Verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	return config, nil
}

// Validate rejects configurations the render loop cannot run with.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.LEDs <= 0 {
		return errFactory.WithData(errors.ErrInvalidLEDCount, c.LEDs)
	}
	if c.Brightness < 0 || c.Brightness > 1 {
		return errFactory.WithData(errors.ErrInvalidBrightness, c.Brightness)
	}
	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return errFactory.WithData(errors.ErrInvalidSmoothing, c.Smoothing)
	}
	if c.Jitter < 0 || c.Jitter > 1 {
		return errFactory.WithData(errors.ErrInvalidJitter, c.Jitter)
	}

	switch strings.ToLower(c.Sink) {
	case "spi", "pwm", "term":
	default:
		return errFactory.WithData(errors.ErrUnknownSink, c.Sink)
	}

	switch strings.ToLower(c.Source) {
	case "cpu", "gpu":
	default:
		return errFactory.WithData(errors.ErrUnknownSource, c.Source)
	}

	if c.Telemetry && c.Database == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "telemetry enabled without database path")
	}

	return nil
}
