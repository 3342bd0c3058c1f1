package collection

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-softwarelab/common/pkg/types"
)

var (
	// ErrLengthMismatch is returned when the keys and values slices differ in length.
	ErrLengthMismatch = errors.New("keys and values differ in length")
	// ErrNilKey is returned when a key in the keys slice is nil.
	ErrNilKey = errors.New("nil key")
)

// ZipToMap pairs keys with values by position and returns the resulting map.
// When a key occurs more than once the value paired with its last occurrence
// wins.  The result is freshly allocated; on error no map is returned.
func ZipToMap[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}
	result := make(map[K]V, len(keys))
	for i, key := range keys {
		if isNil(key) {
			return nil, fmt.Errorf("%w at index %d", ErrNilKey, i)
		}
		result[key] = values[i]
	}
	return result, nil
}

// PairsToMap converts a slice of pairs into a map keyed by each pair's left
// value.  Later pairs overwrite earlier ones with the same key.
func PairsToMap[K comparable, V any](pairs []types.Pair[K, V]) map[K]V {
	result := make(map[K]V, len(pairs))
	for _, pair := range pairs {
		result[pair.Left] = pair.Right
	}
	return result
}

// isNil reports whether value is nil for kinds that can hold nil; values of
// other kinds are never nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
