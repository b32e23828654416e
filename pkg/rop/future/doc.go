// Package future provides the write-once deferred value the await package
// builds on. Unlike a channel, a settled Future can be read any number of
// times by any number of goroutines.
//
// Highlights:
// - New/Of: create an empty or already-completed future
// - FromFunc: run a producer on a goroutine, capturing panics
// - Complete/Fail/Cancel: settle exactly once, first writer wins
// - Get: block for the outcome under a context
// - All: await a slice of futures in order
package future
