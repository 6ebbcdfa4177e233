package load

// Sampler reads the current system utilization as a percentage in [0,100].
// Implementations are polled once per tick and must not block for longer
// than one tick period under normal operation.
type Sampler interface {
	// Sample returns the utilization since the previous call.
	Sample() (float64, error)

	// Name identifies the sampler variant for logging and telemetry.
	Name() string

	// Close releases any platform resources held by the sampler.
	Close() error
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return v
}
