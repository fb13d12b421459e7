package vars

// FirstNonZero returns the first argument that is not the zero value.
func FirstNonZero[T comparable](values ...T) (ret T) {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return
}
