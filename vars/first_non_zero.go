package vars

// FirstNonZero picks the first value that is set, so command line flags can be
// listed before config values and defaults.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
