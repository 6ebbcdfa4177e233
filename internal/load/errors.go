package load

import "codeberg.org/mutker/ledmeter/internal/errors"

const (
	ErrInitFailed    = errors.ErrorCode("load_init_failed")
	ErrSampleFailed  = errors.ErrorCode("load_sample_failed")
	ErrNoData        = errors.ErrorCode("load_no_data")
	ErrDeviceMissing = errors.ErrorCode("load_device_missing")
	ErrShutdown      = errors.ErrorCode("load_shutdown_failed")
)
