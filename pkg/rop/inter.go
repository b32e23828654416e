package rop

// FaultAdapter is the capability an error type must provide to participate
// in the asynchronous combinator set: producing an instance of itself from
// an arbitrary fault. It is invoked on the zero value of E (an associated
// function in spirit), so implementations must not depend on receiver state.
//
// Synchronous combinators never require it; the From constructors take an
// explicit converter instead.
type FaultAdapter[E any] interface {
	// FromFault converts a captured fault into the error type.
	FromFault(cause error) E
}

// AdaptFault converts a fault through E's FaultAdapter capability without an
// existing instance of E.
func AdaptFault[E FaultAdapter[E]](cause error) E {
	var zero E
	return zero.FromFault(cause)
}
