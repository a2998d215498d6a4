// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import "errors"

var (
	// ErrInvalidArgument indicates a precondition on an input was violated,
	// such as an empty wildcard type name.
	ErrInvalidArgument = &metricError{
		metric:  "invalid_argument",
		message: "invalid argument",
	}

	// ErrValidation indicates rule validation failed.
	ErrValidation = &metricError{
		metric:  "validation_error",
		message: "validation error",
	}

	// ErrCompile indicates the regex engine rejected a compiled pattern.
	ErrCompile = &metricError{
		metric:  "compile_error",
		message: "compile error",
	}
)

// metricError is an internal error type that wraps errors with a type classification
// for metrics and observability. The metric field provides a string label for grouping
// errors in metrics systems.
type metricError struct {
	metric  string // Type classification for metrics (e.g., "invalid_argument", "validation_error")
	message string // Human-readable message
}

// Error implements the error interface.
func (e *metricError) Error() string {
	return e.message
}

// Metric returns the label used to group the error in metrics, such as
// CompileEvent.ErrorType.
func (e *metricError) Metric() string {
	return e.metric
}

// Is reports whether target is a metricError with the same message, so
// sentinels match through errors.Join and fmt.Errorf wrapping.
func (e *metricError) Is(target error) bool {
	if t, ok := target.(*metricError); ok {
		return e.message == t.message
	}
	return false
}

// errorType extracts the error type string for metrics classification.
// Walks the error chain to find metricError types.
func errorType(err error) string {
	if err == nil {
		return ""
	}

	var me *metricError
	if errors.As(err, &me) {
		return me.Metric()
	}

	return "unknown"
}
