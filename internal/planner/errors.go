package planner

import "errors"

// Domain-specific errors for the planner package. The generation
// pipeline wraps these so callers can tell failure kinds apart with
// errors.Is.
var (
	// ErrInvalidInput marks bad task or window input from the user.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange marks a task removal with a bad position.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrMissingCredential marks generation attempted with no usable
	// LLM credential configured.
	ErrMissingCredential = errors.New("no LLM credential configured")

	// ErrServiceUnavailable marks a failed or timed-out call to the
	// scheduling model.
	ErrServiceUnavailable = errors.New("scheduling service unavailable")

	// ErrMalformedResponse marks a model response that could not be
	// parsed into schedule entries.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrOverlap marks a model response with overlapping entries.
	ErrOverlap = errors.New("schedule entries overlap")

	// ErrOutOfWindow marks a model response with entries outside the
	// availability window.
	ErrOutOfWindow = errors.New("schedule entry outside time window")

	// ErrScheduleEmpty marks a model response that scheduled nothing
	// for a non-empty task list.
	ErrScheduleEmpty = errors.New("model returned an empty schedule")

	// ErrCalendarUnavailable marks calendar export without configured
	// Google credentials.
	ErrCalendarUnavailable = errors.New("calendar export not configured")
)
