package mapping

// Merge copies every entry of src into dst, overwriting values of keys
// present in both.  Keys found only in dst are left untouched.  dst must be
// non-nil when src has entries.
func Merge[M ~map[K]V, K comparable, V any](dst, src M) {
	for key, value := range src {
		dst[key] = value
	}
}

// Merged combines a and b into a freshly allocated map, entries of b
// overwriting entries of a that share a key.  Neither input is touched and
// the result never aliases them, even when one or both are empty.
func Merged[M ~map[K]V, K comparable, V any](a, b M) M {
	result := make(M, len(a)+len(b))
	for key, value := range a {
		result[key] = value
	}
	for key, value := range b {
		result[key] = value
	}
	return result
}
