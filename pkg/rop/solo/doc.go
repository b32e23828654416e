// Package solo contains the synchronous combinators over rop.Result. These
// are free generic functions because type-changing transforms cannot be
// expressed as Go methods.
//
// Highlights:
// - Map: transform the success payload
// - AndThen: bind a Result-producing step, short-circuiting on Err
// - AndThenWith: bind plus a projection over both values
// - Tee/DoubleTee: side-effect helpers
//
// None of these intercept faults; a panicking step propagates. Fault capture
// belongs to rop.From and the await package.
package solo
