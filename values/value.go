// Package values holds dynamically typed values that can only be recovered
// by naming the exact type they were stored as.
package values

import (
	"fmt"
	"reflect"
)

type Value struct {
	typ   reflect.Type
	value any
}

type none struct{}

var noneType = reflect.TypeFor[none]()

// None is the result of calling a function that returns nothing.
var None = Value{
	typ: noneType,
}

// Of wraps v as static type T. For interface types the interface is
// recorded, not the dynamic type of v.
func Of[T any](v T) Value {
	return Value{
		typ:   reflect.TypeFor[T](),
		value: v,
	}
}

// FromReflect wraps rv as rv.Type().
func FromReflect(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Value{}
	}
	return Value{
		typ:   rv.Type(),
		value: rv.Interface(),
	}
}

func As[T any](v Value) (ret T, err error) {
	expected := reflect.TypeFor[T]()
	if v.typ != expected {
		return ret, &TypeMismatchError{
			Expected: expected,
			Actual:   v.typ,
		}
	}
	// a nil interface value fails the assertion and leaves ret as the zero T
	ret, _ = v.value.(T)
	return ret, nil
}

func MustAs[T any](v Value) T {
	ret, err := As[T](v)
	if err != nil {
		panic(err)
	}
	return ret
}

func (v Value) IsValid() bool {
	return v.typ != nil
}

func (v Value) IsNone() bool {
	return v.typ == noneType
}

// Type returns the type v was wrapped as, or nil for None and invalid values.
func (v Value) Type() reflect.Type {
	if v.typ == noneType {
		return nil
	}
	return v.typ
}

func (v Value) Any() any {
	return v.value
}

// Reflect returns v as a reflect.Value of exactly type t.
func (v Value) Reflect(t reflect.Type) (reflect.Value, error) {
	if v.typ != t {
		return reflect.Value{}, &TypeMismatchError{
			Expected: t,
			Actual:   v.typ,
		}
	}
	ret := reflect.New(t).Elem()
	if v.value != nil {
		ret.Set(reflect.ValueOf(v.value))
	}
	return ret, nil
}

func (v Value) String() string {
	switch v.typ {
	case nil:
		return "<invalid>"
	case noneType:
		return "<none>"
	}
	return fmt.Sprintf("%v", v.value)
}

func typeName(t reflect.Type) string {
	switch t {
	case nil:
		return "invalid value"
	case noneType:
		return "none"
	}
	return t.String()
}
