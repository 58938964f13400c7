// Package recovery converts panics raised inside typed comparison kernels
// into plain errors. Kernel dispatch over caller-provided schemas can reach
// type combinations with no registered implementation; a panic there must
// surface as a per-value error, not take down the scan.
package recovery

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// RecoverToValue wraps a function that returns a value and error.
// If the function panics, returns zero value and an error carrying the
// panic value, and logs the panic with its stack trace.
//
// Example:
//
//	verdict, err := recovery.RecoverToValue(logger, "Compare", func() (bool, error) {
//	    return compareArrays(op, left, right)
//	})
func RecoverToValue[T any](logger *slog.Logger, operation string, fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic recovered",
				"operation", operation,
				"panic", r,
				"stack", string(debug.Stack()),
			)

			var zero T
			result = zero
			err = fmt.Errorf("%s panicked: %v", operation, r)
		}
	}()

	return fn()
}
