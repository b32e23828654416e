package await

import (
	"context"
	"errors"

	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop"
	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop/future"
)

// Every combinator in this package is fault-capturing: an awaiting fault or
// a panic inside a caller-supplied step becomes Err(E.FromFault(...)) on the
// returned future instead of escaping. The one exception is cancellation,
// which is a control signal in Go and propagates as a transport failure of
// the returned future, never recast into a domain error.
//
// Steps run strictly in composition order; once a step resolves to Err,
// later continuations are never invoked and the error payload threads
// through to the end of the chain.

// capture settles out with a converted Err when the surrounding goroutine
// panicked. Must be installed with defer.
func capture[U any, E rop.FaultAdapter[E]](out *future.Future[rop.Result[U, E]]) {
	if v := recover(); v != nil {
		out.Complete(rop.Err[U](rop.AdaptFault[E](rop.PanicError(v))))
	}
}

// isCancellation covers both ways a chain gets canceled: the context
// sentinels and an explicitly canceled future.
func isCancellation(err error) bool {
	return rop.IsCancellation(err) || errors.Is(err, future.ErrCanceled)
}

// settleFault settles out for an awaiting fault: cancellation propagates,
// anything else converts into a domain Err.
func settleFault[U any, E rop.FaultAdapter[E]](out *future.Future[rop.Result[U, E]], err error) {
	if isCancellation(err) {
		out.Fail(err)
		return
	}
	out.Complete(rop.Err[U](rop.AdaptFault[E](err)))
}

// Map transforms the eventual success payload with a synchronous step.
func Map[T, U any, E rop.FaultAdapter[E]](ctx context.Context,
	d *future.Future[rop.Result[T, E]],
	f func(ctx context.Context, t T) U) *future.Future[rop.Result[U, E]] {

	out := future.New[rop.Result[U, E]]()

	go func() {
		defer capture(out)

		r, err := d.Get(ctx)
		if err != nil {
			settleFault(out, err)
			return
		}
		if r.IsErr() {
			out.Complete(rop.Err[U](r.Err()))
			return
		}
		out.Complete(rop.Ok[U, E](f(ctx, r.Value())))
	}()

	return out
}

// MapAwait transforms the eventual success payload with a step that is
// itself deferred.
func MapAwait[T, U any, E rop.FaultAdapter[E]](ctx context.Context,
	d *future.Future[rop.Result[T, E]],
	f func(ctx context.Context, t T) *future.Future[U]) *future.Future[rop.Result[U, E]] {

	out := future.New[rop.Result[U, E]]()

	go func() {
		defer capture(out)

		r, err := d.Get(ctx)
		if err != nil {
			settleFault(out, err)
			return
		}
		if r.IsErr() {
			out.Complete(rop.Err[U](r.Err()))
			return
		}

		u, err := f(ctx, r.Value()).Get(ctx)
		if err != nil {
			settleFault(out, err)
			return
		}
		out.Complete(rop.Ok[U, E](u))
	}()

	return out
}

// AndThen binds a synchronous Result-producing step onto the eventual
// success payload, short-circuiting on Err.
func AndThen[T, U any, E rop.FaultAdapter[E]](ctx context.Context,
	d *future.Future[rop.Result[T, E]],
	f func(ctx context.Context, t T) rop.Result[U, E]) *future.Future[rop.Result[U, E]] {

	out := future.New[rop.Result[U, E]]()

	go func() {
		defer capture(out)

		r, err := d.Get(ctx)
		if err != nil {
			settleFault(out, err)
			return
		}
		if r.IsErr() {
			out.Complete(rop.Err[U](r.Err()))
			return
		}
		out.Complete(f(ctx, r.Value()))
	}()

	return out
}

// AndThenAwait binds a deferred Result-producing step onto the eventual
// success payload, short-circuiting on Err.
func AndThenAwait[T, U any, E rop.FaultAdapter[E]](ctx context.Context,
	d *future.Future[rop.Result[T, E]],
	f func(ctx context.Context, t T) *future.Future[rop.Result[U, E]]) *future.Future[rop.Result[U, E]] {

	out := future.New[rop.Result[U, E]]()

	go func() {
		defer capture(out)

		r, err := d.Get(ctx)
		if err != nil {
			settleFault(out, err)
			return
		}
		if r.IsErr() {
			out.Complete(rop.Err[U](r.Err()))
			return
		}

		next, err := f(ctx, r.Value()).Get(ctx)
		if err != nil {
			settleFault(out, err)
			return
		}
		out.Complete(next)
	}()

	return out
}

// Match awaits the deferred result and collapses it through exactly one of
// the two handlers. There is no output future at the collapse point, so
// every awaiting fault, cancellation included, dispatches to onErr after
// conversion; a panic in onOk does too.
func Match[T, R any, E rop.FaultAdapter[E]](ctx context.Context,
	d *future.Future[rop.Result[T, E]],
	onOk func(ctx context.Context, t T) R,
	onErr func(ctx context.Context, e E) R) (out R) {

	r, err := d.Get(ctx)
	if err != nil {
		return onErr(ctx, rop.AdaptFault[E](err))
	}
	if r.IsErr() {
		return onErr(ctx, r.Err())
	}

	defer func() {
		if v := recover(); v != nil {
			out = onErr(ctx, rop.AdaptFault[E](rop.PanicError(v)))
		}
	}()

	return onOk(ctx, r.Value())
}

// Go starts op on a goroutine and wraps its outcome: Ok on a normal return,
// Err(toErr(...)) on a returned error or panic. The explicit converter keeps
// this usable for error types without the FaultAdapter capability.
func Go[T, E any](ctx context.Context,
	op func(ctx context.Context) (T, error),
	toErr func(cause error) E) *future.Future[rop.Result[T, E]] {

	out := future.New[rop.Result[T, E]]()

	go func() {
		defer func() {
			if v := recover(); v != nil {
				out.Complete(rop.Err[T](toErr(rop.PanicError(v))))
			}
		}()

		v, err := op(ctx)
		if err != nil {
			if isCancellation(err) {
				out.Fail(err)
				return
			}
			out.Complete(rop.Err[T](toErr(err)))
			return
		}
		out.Complete(rop.Ok[T, E](v))
	}()

	return out
}

// GoResult is Go for operations that already produce a Result; a successful
// return passes through as-is.
func GoResult[T, E any](ctx context.Context,
	op func(ctx context.Context) (rop.Result[T, E], error),
	toErr func(cause error) E) *future.Future[rop.Result[T, E]] {

	out := future.New[rop.Result[T, E]]()

	go func() {
		defer func() {
			if v := recover(); v != nil {
				out.Complete(rop.Err[T](toErr(rop.PanicError(v))))
			}
		}()

		r, err := op(ctx)
		if err != nil {
			if isCancellation(err) {
				out.Fail(err)
				return
			}
			out.Complete(rop.Err[T](toErr(err)))
			return
		}
		out.Complete(r)
	}()

	return out
}
