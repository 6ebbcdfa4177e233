package led

import "codeberg.org/mutker/ledmeter/internal/errors"

const (
	ErrSinkInit     = errors.ErrorCode("led_sink_init_failed")
	ErrWriteFailed  = errors.ErrorCode("led_write_failed")
	ErrSinkClosed   = errors.ErrorCode("led_sink_closed")
	ErrFrameMissize = errors.ErrorCode("led_frame_missize")
)
