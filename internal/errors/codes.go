package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"
	ErrUnavailable     ErrorCode = "service_unavailable"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig     ErrorCode = "invalid_configuration"
	ErrMissingConfig     ErrorCode = "missing_configuration"
	ErrBindFlags         ErrorCode = "bind_flags_failed"
	ErrReadConfig        ErrorCode = "read_config_failed"
	ErrInvalidInterval   ErrorCode = "invalid_interval"
	ErrInvalidLEDCount   ErrorCode = "invalid_led_count"
	ErrInvalidBrightness ErrorCode = "invalid_brightness"
	ErrInvalidSmoothing  ErrorCode = "invalid_smoothing"
	ErrInvalidJitter     ErrorCode = "invalid_jitter"
	ErrUnknownSink       ErrorCode = "unknown_sink"
	ErrUnknownSource     ErrorCode = "unknown_source"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Resource errors
	ErrResourceBusy      ErrorCode = "resource_busy"
	ErrResourceNotFound  ErrorCode = "resource_not_found"
	ErrResourceExhausted ErrorCode = "resource_exhausted"

	// Application errors
	ErrInitApp       ErrorCode = "init_app_failed"
	ErrMainLoop      ErrorCode = "main_loop_failed"
	ErrInitSink      ErrorCode = "init_sink_failed"
	ErrInitSampler   ErrorCode = "init_sampler_failed"
	ErrShutdownSink  ErrorCode = "shutdown_sink_failed"
	ErrBlankOnExit   ErrorCode = "blank_on_exit_failed"
	ErrInitTelemetry ErrorCode = "init_telemetry_failed"

	// Operation errors
	ErrOperationFailed  ErrorCode = "operation_failed"
	ErrTimeout          ErrorCode = "operation_timeout"
	ErrInvalidOperation ErrorCode = "invalid_operation"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:          "Internal error occurred",
	ErrInvalidArgument:   "Invalid argument provided",
	ErrNotImplemented:    "Operation not implemented",
	ErrUnavailable:       "Service unavailable",
	ErrAlreadyRunning:    "Another instance is already running",
	ErrInvalidConfig:     "Invalid configuration",
	ErrMissingConfig:     "Missing configuration",
	ErrBindFlags:         "Failed to bind flags",
	ErrReadConfig:        "Failed to read configuration",
	ErrInvalidInterval:   "Invalid interval value",
	ErrInvalidLEDCount:   "LED count must be positive",
	ErrInvalidBrightness: "Brightness must be within [0,1]",
	ErrInvalidSmoothing:  "Smoothing factor must be within (0,1]",
	ErrInvalidJitter:     "Jitter intensity must be within [0,1]",
	ErrUnknownSink:       "Unknown LED sink",
	ErrUnknownSource:     "Unknown utilization source",
	ErrInvalidLogLevel:   "Invalid log level",
	ErrInitFailed:        "Initialization failed",
	ErrShutdownFailed:    "Shutdown failed",
	ErrResourceBusy:      "Resource is busy",
	ErrResourceNotFound:  "Resource not found",
	ErrResourceExhausted: "Resource exhausted",
	ErrInitApp:           "Failed to initialize application",
	ErrMainLoop:          "Error in main loop",
	ErrInitSink:          "Failed to initialize LED sink",
	ErrInitSampler:       "Failed to initialize utilization sampler",
	ErrShutdownSink:      "Failed to shut down LED sink",
	ErrBlankOnExit:       "Failed to blank LED strip on exit",
	ErrInitTelemetry:     "Failed to initialize telemetry",
	ErrOperationFailed:   "Operation failed",
	ErrTimeout:           "Operation timed out",
	ErrInvalidOperation:  "Invalid operation",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
