package funcs

import (
	"fmt"
	"reflect"

	"github.com/reusee/funcmap/values"
)

// Method is a method bound to a receiver.
// The receiver is kept reachable for as long as the Method is.
type Method struct {
	fn    reflect.Value
	bound []reflect.Value
	sig   *signature
}

var _ Callable = new(Method)

// NewMethod binds a method expression like (*T).M to receiver.
func NewMethod(method any, receiver any) (*Method, error) {
	if method == nil {
		return nil, fmt.Errorf("%w: nil method", ErrUnsupportedSignature)
	}
	fnValue := reflect.ValueOf(method)
	sig, err := newSignature(fnValue.Type(), 1)
	if err != nil {
		return nil, err
	}
	if fnValue.IsNil() {
		return nil, fmt.Errorf("%w: nil method", ErrUnsupportedSignature)
	}

	recv, err := receiverValue(fnValue.Type().In(0), receiver)
	if err != nil {
		return nil, err
	}

	return &Method{
		fn:    fnValue,
		bound: []reflect.Value{recv},
		sig:   sig,
	}, nil
}

// MethodOf binds the method named name of receiver.
func MethodOf(receiver any, name string) (*Method, error) {
	recv := reflect.ValueOf(receiver)
	if !recv.IsValid() {
		return nil, fmt.Errorf("%w: nil receiver", ErrInvalidReceiver)
	}
	if recv.Kind() == reflect.Pointer && recv.IsNil() {
		return nil, fmt.Errorf("%w: nil %v", ErrInvalidReceiver, recv.Type())
	}
	fnValue := recv.MethodByName(name)
	if !fnValue.IsValid() {
		return nil, fmt.Errorf("%w: %v has no method %s", ErrInvalidReceiver, recv.Type(), name)
	}
	sig, err := newSignature(fnValue.Type(), 0)
	if err != nil {
		return nil, err
	}
	return &Method{
		fn:  fnValue,
		sig: sig,
	}, nil
}

func receiverValue(t reflect.Type, receiver any) (ret reflect.Value, err error) {
	v := reflect.ValueOf(receiver)
	if !v.IsValid() {
		return ret, fmt.Errorf("%w: nil receiver", ErrInvalidReceiver)
	}
	if !v.Type().AssignableTo(t) {
		return ret, fmt.Errorf("%w: %v is not assignable to %v", ErrInvalidReceiver, v.Type(), t)
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return ret, fmt.Errorf("%w: nil %v", ErrInvalidReceiver, v.Type())
	}
	ret = reflect.New(t).Elem()
	ret.Set(v)
	return ret, nil
}

func (m *Method) Call(args ...values.Value) (values.Value, error) {
	in, err := m.sig.in(m.bound, args)
	if err != nil {
		return values.Value{}, err
	}
	return m.sig.out(m.fn.Call(in))
}

func (m *Method) Arity() int {
	return len(m.sig.params)
}

// Type returns the method type without the receiver.
func (m *Method) Type() reflect.Type {
	return m.sig.typ
}
