// Package funcs erases Go function signatures behind Callable.
//
// A Callable is built once from a function or a method and its receiver.
// The parameter types are captured at construction; Call checks the number
// of arguments and the exact type of every argument before invoking the
// underlying function.
//
// Accepted result shapes are (), (R), (error) and (R, error). A non-nil
// trailing error is returned as a *CallError. Panics raised by the wrapped
// function are not recovered.
package funcs

import (
	"github.com/reusee/funcmap/values"
)

type Callable interface {
	// Call returns an invalid Value when err is not nil.
	Call(args ...values.Value) (values.Value, error)
}
