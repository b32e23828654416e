package solo

import (
	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop"
)

// Map transforms the success payload with f and rewraps it as Ok; on Err the
// error passes through untouched. f must not fault: this layer intercepts
// nothing, so a panicking f propagates as an ordinary panic. That asymmetry
// with the await package is deliberate.
func Map[T, U, E any](r rop.Result[T, E], f func(T) U) rop.Result[U, E] {
	if r.IsErr() {
		return rop.Err[U](r.Err())
	}
	return rop.Ok[U, E](f(r.Value()))
}

// AndThen sequences a fallible step: on Ok it invokes f and returns its
// result directly; on Err it short-circuits, recasting the error to the new
// success type without invoking f.
func AndThen[T, U, E any](r rop.Result[T, E], f func(T) rop.Result[U, E]) rop.Result[U, E] {
	if r.IsErr() {
		return rop.Err[U](r.Err())
	}
	return f(r.Value())
}

// AndThenWith is AndThen with a projection, so an intermediate binding and
// the original value can be combined in one step.
func AndThenWith[T, U, V, E any](r rop.Result[T, E],
	bind func(T) rop.Result[U, E],
	project func(T, U) V) rop.Result[V, E] {

	if r.IsErr() {
		return rop.Err[V](r.Err())
	}

	t := r.Value()
	return Map(bind(t), func(u U) V {
		return project(t, u)
	})
}

// Tee runs a side effect on the success payload and returns the result
// unchanged.
func Tee[T, E any](r rop.Result[T, E], onOk func(T)) rop.Result[T, E] {
	if r.IsOk() {
		onOk(r.Value())
	}
	return r
}

// DoubleTee runs exactly one of the two side effects and returns the result
// unchanged.
func DoubleTee[T, E any](r rop.Result[T, E], onOk func(T), onErr func(E)) rop.Result[T, E] {
	if r.IsOk() {
		onOk(r.Value())
	} else {
		onErr(r.Err())
	}
	return r
}
