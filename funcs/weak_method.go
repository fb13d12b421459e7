package funcs

import (
	"fmt"
	"reflect"
	"weak"

	"github.com/reusee/funcmap/values"
)

// WeakMethod is a method bound to a receiver it does not keep alive.
// Calls after the receiver is collected return ErrReceiverGone.
type WeakMethod[T any] struct {
	fn       reflect.Value
	receiver weak.Pointer[T]
	sig      *signature
}

var _ Callable = new(WeakMethod[int])

func NewWeakMethod[T any](method any, receiver *T) (*WeakMethod[T], error) {
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
	if t := fnValue.Type().In(0); t != reflect.TypeFor[*T]() {
		return nil, fmt.Errorf("%w: method receiver is %v, got %v", ErrInvalidReceiver, t, reflect.TypeFor[*T]())
	}
	if receiver == nil {
		return nil, fmt.Errorf("%w: nil receiver", ErrInvalidReceiver)
	}
	return &WeakMethod[T]{
		fn:       fnValue,
		receiver: weak.Make(receiver),
		sig:      sig,
	}, nil
}

func (w *WeakMethod[T]) Call(args ...values.Value) (values.Value, error) {
	ptr := w.receiver.Value()
	if ptr == nil {
		return values.Value{}, ErrReceiverGone
	}
	in, err := w.sig.in([]reflect.Value{reflect.ValueOf(ptr)}, args)
	if err != nil {
		return values.Value{}, err
	}
	return w.sig.out(w.fn.Call(in))
}

func (w *WeakMethod[T]) Arity() int {
	return len(w.sig.params)
}

func (w *WeakMethod[T]) Type() reflect.Type {
	return w.sig.typ
}
