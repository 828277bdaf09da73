// Package try provides Try[T], the outcome of a computation that either
// produced a value (Success) or raised an error (Failure).
//
// Raising means returning a non-nil error or panicking. Operations differ in
// whether they capture what a callback raises:
// - Of/Do, Map, FlatMap/Bind, Filter, Transform: capture into a Failure
// - Each, Recover, RecoverWith: let callback panics reach the caller
//
// Highlights:
// - Success/Failure/Of/Do: construct a Try
// - Get/MustGet/GetOrElse/OrElse: read the outcome
// - Map/FlatMap/Filter/Transform: continue on success
// - Recover/RecoverWith: continue on selected failures
// - Failed/Flatten/Join/Collect: reshape outcomes
package try
