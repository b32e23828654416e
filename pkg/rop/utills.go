package rop

import (
	"context"
	"errors"

	"github.com/zeebo/errs"
)

// PanicError normalizes a recovered panic value into an error. Panic values
// that already are errors pass through unchanged.
func PanicError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return errs.New("panic: %v", v)
}

// IsCancellation reports whether err carries a context cancellation or
// deadline signal. The asynchronous combinators use this to let cancellation
// propagate as cancellation rather than recasting it into a domain error.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
