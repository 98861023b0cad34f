package maybe

import "fmt"

// Maybe holds either a value of T or the reason why there is none.
// The zero value is absent without a reason.
type Maybe[T any] struct {
	value     T
	reason    string
	present   bool
	hasReason bool
}

// NoneMarker carries only the reason of an absence and can be turned into
// a Maybe of any type with FromNone.
type NoneMarker struct {
	reason    string
	hasReason bool
}

// FromValue returns a present Maybe holding v.
//
// v is expected to be a meaningful value: a nil pointer is accepted and
// stored as is. Use FromNillable when v may be nil.
func FromValue[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
	}
}

// Some is a short form of FromValue.
func Some[T any](v T) Maybe[T] {
	return FromValue(v)
}

// FromAbsence returns an absent Maybe carrying reason.
func FromAbsence[T any](reason string) Maybe[T] {
	return Maybe[T]{
		reason:    reason,
		hasReason: true,
	}
}

// Nothing returns an absent Maybe without a reason.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromNillable returns an absent Maybe with reason when v is nil,
// a present one otherwise.
func FromNillable[T any](v T, reason string) Maybe[T] {
	if IsNil(v) {
		return FromAbsence[T](reason)
	}
	return FromValue(v)
}

// FromPair adapts the comma-ok idiom.
func FromPair[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return FromValue(v)
}

// None builds a marker. Only the first reason is kept.
func None(reason ...string) NoneMarker {
	if len(reason) == 0 {
		return NoneMarker{}
	}
	return NoneMarker{reason: reason[0], hasReason: true}
}

// Reason returns the marker's reason and whether one was given.
func (n NoneMarker) Reason() (string, bool) {
	return n.reason, n.hasReason
}

// FromNone converts a marker into an absent Maybe[T].
func FromNone[T any](n NoneMarker) Maybe[T] {
	return Maybe[T]{
		reason:    n.reason,
		hasReason: n.hasReason,
	}
}

func (m Maybe[T]) HasValue() bool {
	return m.present
}

// Value returns the held value.
// It panics with a *NoneValueError carrying the stored reason when m is
// absent; check HasValue first or use one of the GetValueOr methods.
func (m Maybe[T]) Value() T {
	if !m.present {
		panic(&NoneValueError{Reason: m.reason})
	}
	return m.value
}

// Get returns the held value, or a *NoneValueError when m is absent.
func (m Maybe[T]) Get() (T, error) {
	if !m.present {
		var zero T
		return zero, &NoneValueError{Reason: m.reason}
	}
	return m.value, nil
}

func (m Maybe[T]) TryGetValue() (T, bool) {
	if !m.present {
		var zero T
		return zero, false
	}
	return m.value, true
}

// Reason returns why m is absent and whether a reason was given.
// A present Maybe never has a reason.
func (m Maybe[T]) Reason() (string, bool) {
	if m.present {
		return "", false
	}
	return m.reason, m.hasReason
}

func (m Maybe[T]) GetValueOrDefault() T {
	var zero T
	return m.GetValueOr(zero)
}

func (m Maybe[T]) GetValueOr(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}

// GetValueOrElse calls factory only when m is absent.
func (m Maybe[T]) GetValueOrElse(factory func() T) T {
	if m.present {
		return m.value
	}
	if factory == nil {
		panic(missingArgument("factory"))
	}
	return factory()
}

func (m Maybe[T]) GetValueOrMaybe(alternative Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return alternative
}

// GetValueOrMaybeElse calls factory only when m is absent.
func (m Maybe[T]) GetValueOrMaybeElse(factory func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	if factory == nil {
		panic(missingArgument("factory"))
	}
	return factory()
}

// GetValueOrPanic is like Value but reports message instead of the
// stored reason.
func (m Maybe[T]) GetValueOrPanic(message string) T {
	if !m.present {
		panic(&NoneValueError{Reason: message})
	}
	return m.value
}

// Match calls onPresent with the value or onAbsent, never both.
// The handler for the current state must not be nil.
func (m Maybe[T]) Match(onPresent func(T), onAbsent func()) {
	if m.present {
		if onPresent == nil {
			panic(missingArgument("onPresent"))
		}
		onPresent(m.value)
		return
	}

	if onAbsent == nil {
		panic(missingArgument("onAbsent"))
	}
	onAbsent()
}

func (m Maybe[T]) String() string {
	switch {
	case m.present:
		return fmt.Sprintf("Some(%v)", m.value)
	case m.hasReason:
		return fmt.Sprintf("None(%s)", m.reason)
	default:
		return "None"
	}
}

// ToResult converts m into a Result whose error branch carries the reason.
func ToResult[T any](m Maybe[T]) Result[T, string] {
	if m.present {
		return Ok[T, string](m.value)
	}
	return Error[T](m.reason)
}
