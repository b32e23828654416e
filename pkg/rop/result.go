package rop

// Result is an immutable two-variant container: it holds either a success
// value of type T or an error value of type E, never both. The only way to
// construct one is Ok or Err; the only way to take it apart is Match or the
// variant accessors. The zero value of Result is not produced by this
// package and should not be used.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Unit is the success payload for operations that can fail but return
// nothing meaningful. It has exactly one state.
type Unit struct{}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
	}
}

// Value returns the success payload, or the zero T on the Err variant.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error payload, or the zero E on the Ok variant.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Match destructures the result, dispatching to exactly one of the two
// handlers. Both handlers are mandatory; this is the boundary where typed
// errors become domain responses. It is a free function because Go methods
// cannot introduce the result type parameter R.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// FromNullable lifts a possibly-nil pointer into a Result: Ok with the
// pointed-to value when present, Err(errIfNil) when nil. Absence is not a
// fault, so nothing is intercepted here.
func FromNullable[T, E any](v *T, errIfNil E) Result[T, E] {
	if v == nil {
		return Err[T](errIfNil)
	}
	return Ok[T, E](*v)
}

// From runs op and wraps its outcome: Ok on a normal return, Err(toErr(...))
// when op returns a non-nil error or panics. This is the designated seam
// between code that may fault and the Result world; panics are normalized
// with PanicError before conversion.
func From[T, E any](op func() (T, error), toErr func(error) E) (res Result[T, E]) {
	defer func() {
		if v := recover(); v != nil {
			res = Err[T](toErr(PanicError(v)))
		}
	}()

	v, err := op()
	if err != nil {
		return Err[T](toErr(err))
	}
	return Ok[T, E](v)
}
