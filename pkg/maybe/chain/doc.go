// Package chain provides a fluent wrapper around maybe.Maybe[T] built on
// solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Maybe[T] or value
// - Then: switch to a new Maybe[U] via a function
// - ThenTry: call a function (U, error) and turn the error into absence
// - Map: transform the present value (T -> U)
// - Validate: drop the value when a check fails
// - Ensure: run side effects on presence without changing the result
// - Or/OrElse: fall back to another source
// - Finally: collapse the chain into a final value via handlers
package chain
