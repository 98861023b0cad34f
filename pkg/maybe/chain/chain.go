package chain

import (
	"github.com/ib-77/maybe3/pkg/maybe"
	"github.com/ib-77/maybe3/pkg/maybe/solo"
)

// Chain wraps a maybe.Maybe to enable fluent chaining
type Chain[T any] struct {
	current maybe.Maybe[T]
}

// Start creates a new chain from a maybe.Maybe
func Start[T any](m maybe.Maybe[T]) Chain[T] {
	return Chain[T]{current: m}
}

// FromValue creates a new chain from a present value
func FromValue[T any](value T) Chain[T] {
	return Start(maybe.FromValue(value))
}

// Result returns the underlying maybe.Maybe
func (c Chain[T]) Result() maybe.Maybe[T] {
	return c.current
}

// Then chains a function that returns maybe.Maybe[U]
func Then[T, U any](c Chain[T], onPresent func(T) maybe.Maybe[U]) Chain[U] {
	return Start(solo.Switch(c.current, onPresent))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnPresent func(T) (U, error)) Chain[U] {
	return Start(solo.Try(c.current, tryOnPresent))
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onPresent func(T) U) Chain[U] {
	return Start(solo.Map(c.current, onPresent))
}

// Validate turns a failed check into absence
func (c Chain[T]) Validate(validate func(T) (bool, string)) Chain[T] {
	return Start(solo.AndValidate(c.current, validate))
}

// Ensure performs a side effect without changing the result
func (c Chain[T]) Ensure(onPresent func(T)) Chain[T] {
	return Start(solo.Tee(c.current, onPresent))
}

// Or falls back to alternative when the chain is absent
func (c Chain[T]) Or(alternative maybe.Maybe[T]) Chain[T] {
	return Start(c.current.GetValueOrMaybe(alternative))
}

// OrElse is Or with a lazily built alternative
func (c Chain[T]) OrElse(alternative func() maybe.Maybe[T]) Chain[T] {
	return Start(c.current.GetValueOrMaybeElse(alternative))
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c Chain[T], onPresent func(T) U, onAbsent func(reason string) U) U {
	return solo.Finally(c.current, onPresent, onAbsent)
}
