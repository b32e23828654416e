// Package await lifts the solo combinators over deferred results
// (*future.Future[rop.Result[T, E]]) and adds fault interception at every
// link of a chain.
//
// Highlights:
// - Go/GoResult: fault-capturing constructors with an explicit converter
// - Map/MapAwait: transform the eventual success payload, sync or deferred
// - AndThen/AndThenAwait: bind a Result-producing step, sync or deferred
// - Match: await and collapse through mandatory ok/err handlers
//
// The error type must implement rop.FaultAdapter so faults caught deep
// inside a chain can be converted without a call-site converter.
// Cancellation is the exception to interception: it fails the returned
// future with the context error instead of becoming a domain Err.
package await
