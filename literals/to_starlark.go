package literals

import (
	"fmt"
	"reflect"

	"github.com/reusee/funcmap/values"
	"go.starlark.net/starlark"
)

func ToStarlark(v values.Value) (starlark.Value, error) {
	if v.IsNone() {
		return starlark.None, nil
	}
	if !v.IsValid() {
		return nil, fmt.Errorf("invalid value")
	}
	return toStarlarkValue(reflect.ValueOf(v.Any()))
}

func toStarlarkValue(value reflect.Value) (starlark.Value, error) {
	if !value.IsValid() {
		return starlark.None, nil
	}

	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool()), nil

	case reflect.String:
		return starlark.String(value.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float()), nil

	case reflect.Slice, reflect.Array:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			if value.Kind() == reflect.Slice {
				return starlark.Bytes(value.Bytes()), nil
			}
		}
		elems := make([]starlark.Value, value.Len())
		for i := range value.Len() {
			elem, err := toStarlarkValue(value.Index(i))
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return starlark.NewList(elems), nil

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			k, err := toStarlarkValue(iter.Key())
			if err != nil {
				return nil, err
			}
			v, err := toStarlarkValue(iter.Value())
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(k, v); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			v, err := toStarlarkValue(value.Field(i))
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(field.Name), v); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None, nil
		}
		return toStarlarkValue(value.Elem())

	}

	return nil, fmt.Errorf("unsupported type for starlark: %v", value.Type())
}
