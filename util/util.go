// Package util provides small generic helpers shared across the kit.
package util

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Contains reports whether slice contains val.
func Contains[T comparable](slice []T, val T) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
