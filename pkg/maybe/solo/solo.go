package solo

import (
	"strings"

	"github.com/ib-77/maybe3/pkg/maybe"
)

const reasonSeparator = "; "

// Match reduces m to R by calling exactly one of the handlers.
// The handler for the current state must not be nil.
func Match[T, R any](m maybe.Maybe[T], onPresent func(T) R, onAbsent func() R) R {
	var out R
	m.Match(
		func(v T) { out = call1(onPresent, v, "onPresent") },
		func() { out = call0(onAbsent, "onAbsent") },
	)
	return out
}

// Finally is Match with the absence reason handed to onAbsent.
func Finally[T, R any](m maybe.Maybe[T], onPresent func(T) R, onAbsent func(reason string) R) R {
	if v, ok := m.TryGetValue(); ok {
		return call1(onPresent, v, "onPresent")
	}
	reason, _ := m.Reason()
	return call1(onAbsent, reason, "onAbsent")
}

func Map[In, Out any](m maybe.Maybe[In], onPresent func(In) Out) maybe.Maybe[Out] {
	if v, ok := m.TryGetValue(); ok {
		return maybe.FromValue(call1(onPresent, v, "onPresent"))
	}
	return passAbsence[In, Out](m)
}

func Switch[In, Out any](m maybe.Maybe[In], onPresent func(In) maybe.Maybe[Out]) maybe.Maybe[Out] {
	if v, ok := m.TryGetValue(); ok {
		return call1(onPresent, v, "onPresent")
	}
	return passAbsence[In, Out](m)
}

// Try calls onTryExecute with the value; a returned error becomes the
// absence reason.
func Try[In, Out any](m maybe.Maybe[In], onTryExecute func(In) (Out, error)) maybe.Maybe[Out] {
	v, ok := m.TryGetValue()
	if !ok {
		return passAbsence[In, Out](m)
	}
	if onTryExecute == nil {
		panic(maybe.ErrMissingArgument.New("onTryExecute"))
	}

	out, err := onTryExecute(v)
	if err != nil {
		return maybe.FromAbsence[Out](err.Error())
	}
	return maybe.FromValue(out)
}

func Validate[T any](input T, validate func(in T) (isValid bool, reason string)) maybe.Maybe[T] {
	return AndValidate(maybe.FromValue(input), validate)
}

func AndValidate[T any](m maybe.Maybe[T], validate func(in T) (isValid bool, reason string)) maybe.Maybe[T] {
	v, ok := m.TryGetValue()
	if !ok {
		return m
	}
	if validate == nil {
		panic(maybe.ErrMissingArgument.New("validate"))
	}

	if isValid, reason := validate(v); !isValid {
		return maybe.FromAbsence[T](reason)
	}
	return m
}

// ValidateAll runs every check against a present m and joins the reasons
// of the failing ones. With breakOnError it stops at the first failure.
func ValidateAll[T any](m maybe.Maybe[T], breakOnError bool,
	checks ...func(in T) (isValid bool, reason string)) maybe.Maybe[T] {

	v, ok := m.TryGetValue()
	if !ok {
		return m
	}

	var reasons []string
	for _, check := range checks {
		if check == nil {
			panic(maybe.ErrMissingArgument.New("check"))
		}
		if isValid, reason := check(v); !isValid {
			reasons = append(reasons, reason)
			if breakOnError {
				break
			}
		}
	}

	if len(reasons) == 0 {
		return m
	}
	return maybe.FromAbsence[T](strings.Join(reasons, reasonSeparator))
}

func Filter[T any](m maybe.Maybe[T], predicate func(in T) bool, reason string) maybe.Maybe[T] {
	return AndValidate(m, func(in T) (bool, string) {
		return call1(predicate, in, "predicate"), reason
	})
}

// Tee calls onPresent for its side effect and returns m unchanged.
func Tee[T any](m maybe.Maybe[T], onPresent func(T)) maybe.Maybe[T] {
	if v, ok := m.TryGetValue(); ok {
		run1(onPresent, v, "onPresent")
	}
	return m
}

// DoubleTee is Tee with a side effect for the absent state too.
func DoubleTee[T any](m maybe.Maybe[T], onPresent func(T), onAbsent func(reason string)) maybe.Maybe[T] {
	if v, ok := m.TryGetValue(); ok {
		run1(onPresent, v, "onPresent")
		return m
	}

	reason, _ := m.Reason()
	run1(onAbsent, reason, "onAbsent")
	return m
}

// FirstOf returns the first present candidate, or the last one when none
// is present.
func FirstOf[T any](candidates ...maybe.Maybe[T]) maybe.Maybe[T] {
	if len(candidates) == 0 {
		return maybe.Nothing[T]()
	}

	first := candidates[0]
	for _, c := range candidates[1:] {
		first = first.GetValueOrMaybe(c)
	}
	return first
}

// FirstOfLazy evaluates sources in order until one yields a value.
func FirstOfLazy[T any](sources ...func() maybe.Maybe[T]) maybe.Maybe[T] {
	out := maybe.Nothing[T]()
	for _, source := range sources {
		out = out.GetValueOrMaybeElse(source)
		if out.HasValue() {
			return out
		}
	}
	return out
}

func MatchResult[V, R, Out any](r maybe.Result[V, R], onOk func(V) Out, onError func(R) Out) Out {
	var out Out
	r.Match(
		func(v V) { out = call1(onOk, v, "onOk") },
		func(reason R) { out = call1(onError, reason, "onError") },
	)
	return out
}

func MapResult[V, R, Out any](r maybe.Result[V, R], onOk func(V) Out) maybe.Result[Out, R] {
	if r.IsOk() {
		return maybe.Ok[Out, R](call1(onOk, r.Value(), "onOk"))
	}
	return maybe.Error[Out](r.Reason())
}

// TryResult adapts a (value, error) call into a Result.
func TryResult[V any](v V, err error) maybe.Result[V, error] {
	if err != nil {
		return maybe.Error[V](err)
	}
	return maybe.Ok[V, error](v)
}

func passAbsence[In, Out any](m maybe.Maybe[In]) maybe.Maybe[Out] {
	if reason, ok := m.Reason(); ok {
		return maybe.FromAbsence[Out](reason)
	}
	return maybe.Nothing[Out]()
}

func call0[R any](f func() R, name string) R {
	if f == nil {
		panic(maybe.ErrMissingArgument.New("%s", name))
	}
	return f()
}

func call1[In, R any](f func(In) R, in In, name string) R {
	if f == nil {
		panic(maybe.ErrMissingArgument.New("%s", name))
	}
	return f(in)
}

func run1[In any](f func(In), in In, name string) {
	if f == nil {
		panic(maybe.ErrMissingArgument.New("%s", name))
	}
	f(in)
}
