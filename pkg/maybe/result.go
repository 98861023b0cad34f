package maybe

import "fmt"

// Result holds either a value or a typed reason for its failure.
type Result[V, R any] struct {
	value  V
	reason R
	ok     bool
}

func Ok[V, R any](v V) Result[V, R] {
	return Result[V, R]{
		value: v,
		ok:    true,
	}
}

func Error[V, R any](r R) Result[V, R] {
	return Result[V, R]{
		reason: r,
		ok:     false,
	}
}

func (r Result[V, R]) IsOk() bool {
	return r.ok
}

// Value is meaningful only when IsOk is true; it is V's zero value otherwise.
func (r Result[V, R]) Value() V {
	return r.value
}

// Reason is meaningful only when IsOk is false; it is R's zero value otherwise.
func (r Result[V, R]) Reason() R {
	return r.reason
}

func (r Result[V, R]) Get() (V, R, bool) {
	return r.value, r.reason, r.ok
}

func (r Result[V, R]) ValueOr(fallback V) V {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[V, R]) Match(onOk func(V), onError func(R)) {
	if r.ok {
		if onOk == nil {
			panic(missingArgument("onOk"))
		}
		onOk(r.value)
		return
	}

	if onError == nil {
		panic(missingArgument("onError"))
	}
	onError(r.reason)
}

// ToMaybe drops the typed reason, keeping its text form.
func (r Result[V, R]) ToMaybe() Maybe[V] {
	if r.ok {
		return FromValue(r.value)
	}
	return FromAbsence[V](reasonText(r.reason))
}

func (r Result[V, R]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.reason)
}

func reasonText(reason any) string {
	if IsNil(reason) {
		return ""
	}

	switch v := reason.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
