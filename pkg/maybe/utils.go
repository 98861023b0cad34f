package maybe

import (
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, func,
// channel or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsNoneValue reports whether err is, or wraps, a NoneValueError.
func IsNoneValue(err error) bool {
	var nve *NoneValueError
	return errors.As(err, &nve)
}
