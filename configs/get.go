package configs

import (
	"errors"
	"iter"
)

// First returns the value at path of the first file defining it, or the zero T.
// Errors other than ErrValueNotFound panic.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return
	}
	if err != nil {
		panic(err)
	}
	return
}

// All iterates the value at path of every file defining it, in file order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}
