package logging

import (
	"go.uber.org/zap"
)

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

func Stringer[S ~string](s S, v interface{ String() string }) Field {
	return zap.Stringer(string(s), v)
}
