package future

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop"
)

// ErrCanceled is the error a future resolves with when Cancel completes it.
var ErrCanceled = errors.New("future canceled")

// Func is the producer signature accepted by FromFunc.
type Func[T any] func(ctx context.Context) (T, error)

// Future is a write-once deferred value. It can be completed exactly once;
// the first completion wins and later completions are silently ignored. Any
// number of goroutines may Get the same future and all observe the same
// outcome.
//
// The future's own error slot is transport-level: it carries awaiting faults
// such as a producer panic or cancellation. Domain failures travel inside a
// rop.Result payload instead.
type Future[T any] struct {
	settled uint32
	done    chan struct{}

	value T
	err   error
}

func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// Of returns an already-completed future holding value.
func Of[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// FromFunc runs do on a new goroutine and returns a future for its outcome.
// A panic in do fails the future with the normalized panic error.
func FromFunc[T any](ctx context.Context, do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		defer func() {
			if v := recover(); v != nil {
				f.Fail(rop.PanicError(v))
			}
		}()

		v, err := do(ctx)
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()

	return f
}

// Complete settles the future with a value. Ignored if already settled.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Fail settles the future with an error. Ignored if already settled.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

// Cancel settles the future with ErrCanceled. Ignored if already settled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) settle(value T, err error) {
	if atomic.CompareAndSwapUint32(&f.settled, 0, 1) {
		f.value = value
		f.err = err
		close(f.done)
	}
}

// Get blocks until the future settles or ctx is done, whichever comes first.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
