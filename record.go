package recordkit

import (
	"reflect"
	"strings"
	"unicode/utf8"
)

// Record is the attribute-value mapping being checked before a persistence
// operation. The engine never mutates it; ownership stays with the caller.
type Record map[string]any

// isBlank reports whether a value counts as absent for presence checks:
// a missing or nil value, a whitespace-only string, or an empty
// slice/map/array.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []byte:
		return len(val) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// valueLen measures a value for length rules. Strings are measured in runes
// so multi-byte input behaves the way a user counts characters. A nil or
// missing value has length zero. The second return is false for values that
// have no meaningful length (numbers, booleans, structs).
func valueLen(v any) (int, bool) {
	switch val := v.(type) {
	case nil:
		return 0, true
	case string:
		return utf8.RuneCountInString(val), true
	case []byte:
		return len(val), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}
