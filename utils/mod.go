package utils

// FindIndex returns the position of the first occurrence of item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Filter returns the elements of slice for which keep holds, in order. The
// result is nil when nothing is kept.
func Filter[T any](slice []T, keep func(T) bool) []T {
	var kept []T
	for _, v := range slice {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	return kept
}
