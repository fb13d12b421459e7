package funcs

import (
	"fmt"
	"reflect"

	"github.com/reusee/funcmap/values"
)

type Func struct {
	fn  reflect.Value
	sig *signature
}

var _ Callable = new(Func)

func NewFunc(fn any) (*Func, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrUnsupportedSignature)
	}
	fnValue := reflect.ValueOf(fn)
	sig, err := newSignature(fnValue.Type(), 0)
	if err != nil {
		return nil, err
	}
	if fnValue.IsNil() {
		return nil, fmt.Errorf("%w: nil function", ErrUnsupportedSignature)
	}
	return &Func{
		fn:  fnValue,
		sig: sig,
	}, nil
}

func (f *Func) Call(args ...values.Value) (values.Value, error) {
	in, err := f.sig.in(nil, args)
	if err != nil {
		return values.Value{}, err
	}
	return f.sig.out(f.fn.Call(in))
}

func (f *Func) Arity() int {
	return len(f.sig.params)
}

func (f *Func) Type() reflect.Type {
	return f.sig.typ
}
