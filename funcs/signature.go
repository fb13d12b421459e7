package funcs

import (
	"fmt"
	"reflect"

	"github.com/reusee/funcmap/values"
)

var errorType = reflect.TypeFor[error]()

type signature struct {
	// type without the skipped leading parameters
	typ       reflect.Type
	params    []reflect.Type
	hasResult bool
	hasError  bool
}

func newSignature(t reflect.Type, skip int) (*signature, error) {
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: must be function, got %v", ErrUnsupportedSignature, t)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic function %v", ErrUnsupportedSignature, t)
	}
	if t.NumIn() < skip {
		return nil, fmt.Errorf("%w: %v has no receiver parameter", ErrUnsupportedSignature, t)
	}

	sig := new(signature)
	for i := skip; i < t.NumIn(); i++ {
		sig.params = append(sig.params, t.In(i))
	}

	var outs []reflect.Type
	for i := range t.NumOut() {
		outs = append(outs, t.Out(i))
	}
	switch len(outs) {
	case 0:
	case 1:
		if outs[0] == errorType {
			sig.hasError = true
		} else {
			sig.hasResult = true
		}
	case 2:
		if outs[1] != errorType {
			return nil, fmt.Errorf("%w: second return value of %v must be error", ErrUnsupportedSignature, t)
		}
		sig.hasResult = true
		sig.hasError = true
	default:
		return nil, fmt.Errorf("%w: %v returns more than 2 values", ErrUnsupportedSignature, t)
	}

	sig.typ = reflect.FuncOf(sig.params, outs, false)
	return sig, nil
}

// in builds the reflect arguments, prefixed by bound values such as a receiver.
func (s *signature) in(bound []reflect.Value, args []values.Value) ([]reflect.Value, error) {
	if len(args) != len(s.params) {
		return nil, &ArityMismatchError{
			Want: len(s.params),
			Got:  len(args),
		}
	}
	ret := make([]reflect.Value, 0, len(bound)+len(args))
	ret = append(ret, bound...)
	for i, arg := range args {
		v, err := arg.Reflect(s.params[i])
		if err != nil {
			return nil, &ArgumentError{
				Index: i,
				Err:   err,
			}
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func (s *signature) out(rets []reflect.Value) (values.Value, error) {
	if s.hasError {
		if errValue := rets[len(rets)-1]; !errValue.IsNil() {
			return values.Value{}, &CallError{
				Err: errValue.Interface().(error),
			}
		}
	}
	if s.hasResult {
		return values.FromReflect(rets[0]), nil
	}
	return values.None, nil
}
