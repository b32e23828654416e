// Package chain provides a small fluent wrapper over the solo combinators.
//
// It is purely notational: methods cover same-type steps, free functions
// cover type-changing ones, and Finally reduces to a concrete value via
// mandatory handlers. Nothing here intercepts faults.
package chain
