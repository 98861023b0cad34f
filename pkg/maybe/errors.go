package maybe

import (
	"errors"

	"github.com/zeebo/errs"
)

// ErrNoneValue matches every *NoneValueError with errors.Is.
var ErrNoneValue = errors.New("value is absent")

// ErrMissingArgument classifies panics raised when a required handler or
// factory is nil.
var ErrMissingArgument = errs.Class("missing argument")

// NoneValueError is raised when a value is read from an absent Maybe.
type NoneValueError struct {
	Reason string
}

func (e *NoneValueError) Error() string {
	if e.Reason == "" {
		return ErrNoneValue.Error()
	}
	return e.Reason
}

func (e *NoneValueError) Is(target error) bool {
	return target == ErrNoneValue
}

func missingArgument(name string) error {
	return ErrMissingArgument.New("%s", name)
}
