package maybe

// ValueProvider is implemented by Maybe.
type ValueProvider[T any] interface {
	// HasValue reports whether a value is held
	HasValue() bool
	// TryGetValue returns the value and true, or T's zero value and false
	TryGetValue() (T, bool)
	// GetValueOr returns the value or fallback
	GetValueOr(fallback T) T
}

// WithReason extends ValueProvider with the absence reason.
type WithReason[T any] interface {
	ValueProvider[T]
	// Reason returns why no value is held and whether a reason was given
	Reason() (string, bool)
}

// Outcome is implemented by Result.
type Outcome[V, R any] interface {
	// IsOk reports which of Value and Reason is meaningful
	IsOk() bool
	Value() V
	Reason() R
}

var (
	_ WithReason[int]      = Maybe[int]{}
	_ Outcome[int, string] = Result[int, string]{}
)
