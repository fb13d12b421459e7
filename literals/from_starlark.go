package literals

import (
	"fmt"

	"github.com/reusee/funcmap/values"
	"go.starlark.net/starlark"
)

// FromStarlark maps scalars to int, float64, string, bool and []byte.
// Lists and tuples become []any, dicts become map[string]any, None becomes a nil any.
func FromStarlark(v starlark.Value) (values.Value, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return values.Of[any](nil), nil
	case starlark.Bool:
		return values.Of(bool(v)), nil
	case starlark.Int:
		i, ok := v.Int64()
		if !ok || int64(int(i)) != i {
			return values.Value{}, fmt.Errorf("int out of range: %v", v)
		}
		return values.Of(int(i)), nil
	case starlark.Float:
		return values.Of(float64(v)), nil
	case starlark.String:
		return values.Of(string(v)), nil
	case starlark.Bytes:
		return values.Of([]byte(v)), nil
	case *starlark.List:
		return fromSequence(v)
	case starlark.Tuple:
		return fromSequence(v)
	case *starlark.Dict:
		ret := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return values.Value{}, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			elem, err := FromStarlark(item[1])
			if err != nil {
				return values.Value{}, err
			}
			ret[string(key)] = elem.Any()
		}
		return values.Of(ret), nil
	}
	return values.Value{}, fmt.Errorf("unsupported starlark type: %s", v.Type())
}

func fromSequence(seq starlark.Indexable) (values.Value, error) {
	ret := make([]any, 0, seq.Len())
	for i := range seq.Len() {
		elem, err := FromStarlark(seq.Index(i))
		if err != nil {
			return values.Value{}, err
		}
		ret = append(ret, elem.Any())
	}
	return values.Of(ret), nil
}
