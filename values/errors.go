package values

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrTypeMismatch = errors.New("type mismatch")

type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
}

func (t *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expecting %s, got %s",
		typeName(t.Expected),
		typeName(t.Actual),
	)
}

func (t *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
