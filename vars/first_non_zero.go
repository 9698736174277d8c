package vars

// FirstNonZero returns the first value that is not the zero value.
// Flag, config and default values are passed in that order.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
