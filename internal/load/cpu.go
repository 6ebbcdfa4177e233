package load

import (
	"codeberg.org/mutker/ledmeter/internal/errors"
	"github.com/shirou/gopsutil/v3/cpu"
)

type cpuSampler struct{}

// New creates a sampler reading total CPU utilization. The first call primes
// the kernel counter baseline, so the first tick reads 0 rather than blocking
// for a measurement window.
func New() (Sampler, error) {
	errFactory := errors.New()

	if _, err := cpu.Percent(0, false); err != nil {
		return nil, errFactory.Wrap(ErrInitFailed, err)
	}

	return &cpuSampler{}, nil
}

func (*cpuSampler) Name() string {
	return "cpu"
}

func (*cpuSampler) Sample() (float64, error) {
	errFactory := errors.New()

	percentages, err := cpu.Percent(0, false)
	if err != nil {
		return 0, errFactory.Wrap(ErrSampleFailed, err)
	}
	if len(percentages) == 0 {
		return 0, errFactory.New(ErrNoData)
	}

	return clampPercent(percentages[0]), nil
}

func (*cpuSampler) Close() error {
	return nil
}
