package chain

import (
	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop"
	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent composition of same-type steps.
// Type-changing steps use the free functions Then, Map and Finally, since Go
// methods cannot introduce new type parameters.
type Chain[T, E any] struct {
	res rop.Result[T, E]
}

// Start creates a new chain from a rop.Result.
func Start[T, E any](r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a success value.
func FromValue[T, E any](value T) Chain[T, E] {
	return Start(rop.Ok[T, E](value))
}

// Result returns the underlying rop.Result.
func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then binds a same-type Result-producing step.
func (c Chain[T, E]) Then(onOk func(T) rop.Result[T, E]) Chain[T, E] {
	return Start(solo.AndThen(c.res, onOk))
}

// Map transforms the success value in place.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	return Start(solo.Map(c.res, onOk))
}

// Ensure triggers side effects without changing the result.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	return Start(solo.DoubleTee(c.res, onOk, onErr))
}

// Finally collapses the chain to its success type via mandatory handlers.
func (c Chain[T, E]) Finally(onOk func(T) T, onErr func(E) T) T {
	return rop.Match(c.res, onOk, onErr)
}

// Then binds a type-changing Result-producing step.
func Then[T, U, E any](c Chain[T, E], onOk func(T) rop.Result[U, E]) Chain[U, E] {
	return Start(solo.AndThen(c.Result(), onOk))
}

// Map applies a type-changing transformation.
func Map[T, U, E any](c Chain[T, E], onOk func(T) U) Chain[U, E] {
	return Start(solo.Map(c.Result(), onOk))
}

// Finally collapses the chain to an arbitrary type via mandatory handlers.
func Finally[T, U, E any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return rop.Match(c.Result(), onOk, onErr)
}
