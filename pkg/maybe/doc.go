// Package maybe contains two small value types for expected absence and
// expected failure.
//
// - Maybe[T]: a value or an optional human-readable reason for its absence
// - Result[V, R]: a value or a caller-typed reason for the failure
//
// Both are immutable; every operation returns a new instance. Absence and
// failure travel as values. Only misuse panics: reading Value from an absent
// Maybe (*NoneValueError), or passing a nil handler/factory that would be
// called (ErrMissingArgument).
//
// Highlights:
// - FromValue/Some, FromAbsence, Nothing, None + FromNone: construction
// - HasValue/TryGetValue/Get: checked access
// - GetValueOr*/GetValueOrMaybe*: defaulting and fallback chaining
// - Match: handle both states explicitly
package maybe
