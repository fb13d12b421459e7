package funcs

import (
	"errors"
	"fmt"
)

var (
	ErrArityMismatch        = errors.New("arity mismatch")
	ErrUnsupportedSignature = errors.New("unsupported signature")
	ErrInvalidReceiver      = errors.New("invalid receiver")
	ErrReceiverGone         = errors.New("receiver gone")
)

type ArityMismatchError struct {
	Want int
	Got  int
}

func (a *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: expecting %d arguments, got %d", a.Want, a.Got)
}

func (a *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}

// ArgumentError reports a failure converting the argument at Index.
type ArgumentError struct {
	Index int
	Err   error
}

func (a *ArgumentError) Error() string {
	return fmt.Sprintf("argument %d: %v", a.Index, a.Err)
}

func (a *ArgumentError) Unwrap() error {
	return a.Err
}

// CallError carries the error returned by the wrapped function.
type CallError struct {
	Err error
}

func (c *CallError) Error() string {
	return c.Err.Error()
}

func (c *CallError) Unwrap() error {
	return c.Err
}
