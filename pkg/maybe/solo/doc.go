// Package solo contains free functions over maybe.Maybe[T] and
// maybe.Result[V, R]. They exist as functions rather than methods because
// they introduce new type parameters.
//
// Handlers are required only for the state they serve: a nil handler
// panics with maybe.ErrMissingArgument when it would be called and is
// ignored otherwise. Absent inputs never reach present-side handlers.
//
// Highlights:
// - Match/Finally: reduce a Maybe to a concrete value
// - Map/Switch/Try: move from Maybe[In] to Maybe[Out]; absence passes through
// - Validate/AndValidate/ValidateAll/Filter: turn failed checks into absence
// - Tee/DoubleTee: side-effect helpers
// - FirstOf/FirstOfLazy: pick the first present candidate
// - MatchResult/MapResult/TryResult: the same for Result
package solo
