package load

import (
	"codeberg.org/mutker/ledmeter/internal/errors"
	"codeberg.org/mutker/ledmeter/internal/logger"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

type gpuSampler struct {
	device nvml.Device
}

// NewGPU creates a sampler reading GPU utilization through NVML. Intended for
// Jetson-class boards where the GPU is the interesting load signal.
func NewGPU() (Sampler, error) {
	errFactory := errors.New()

	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, errFactory.WithData(ErrInitFailed, nvml.ErrorString(ret))
	}

	device, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, errFactory.WithData(ErrDeviceMissing, nvml.ErrorString(ret))
	}

	if name, ret := device.GetName(); ret == nvml.SUCCESS {
		logger.Info().Msgf("Detected GPU: %v", name)
	} else {
		logger.Warn().Msgf("Failed to get GPU name: %v", nvml.ErrorString(ret))
	}

	return &gpuSampler{device: device}, nil
}

func (*gpuSampler) Name() string {
	return "gpu"
}

func (g *gpuSampler) Sample() (float64, error) {
	errFactory := errors.New()

	utilization, ret := g.device.GetUtilizationRates()
	if ret != nvml.SUCCESS {
		return 0, errFactory.WithData(ErrSampleFailed, nvml.ErrorString(ret))
	}

	return clampPercent(float64(utilization.Gpu)), nil
}

func (*gpuSampler) Close() error {
	errFactory := errors.New()

	if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
		return errFactory.WithData(ErrShutdown, nvml.ErrorString(ret))
	}

	return nil
}
