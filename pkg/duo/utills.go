package duo

import (
	"errors"
	"reflect"
)

// IsNil reports whether v is nil in any of Go's nil-able kinds. Values of
// kinds that cannot be nil (ints, strings, structs) are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// matchesKind reports whether err belongs to any of the listed kinds,
// following wrapped chains the way errors.Is does.
func matchesKind(err error, kinds []error) bool {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
