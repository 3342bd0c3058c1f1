package mapping

// ApplyValues replaces every value of m with modify(value), in place.
func ApplyValues[M ~map[K]V, K comparable, V any](m M, modify func(V) V) {
	for key, value := range m {
		m[key] = modify(value)
	}
}

// MapValues returns a fresh map with the same keys as src and every value
// replaced by modify(value).  src is not touched.
func MapValues[M ~map[K]V, K comparable, V any](src M, modify func(V) V) M {
	result := make(M, len(src))
	for key, value := range src {
		result[key] = modify(value)
	}
	return result
}

// CastValues is MapValues for modifiers that change the value type.
func CastValues[K comparable, V, W any](src map[K]V, modify func(V) W) map[K]W {
	result := make(map[K]W, len(src))
	for key, value := range src {
		result[key] = modify(value)
	}
	return result
}
