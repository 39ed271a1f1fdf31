package util

import (
	"reflect"
)

// IsNil reports whether itf is nil or a typed nil pointer, so that a
// (*slog.Logger)(nil) passed as an option is treated like no option.
func IsNil(itf interface{}) bool {
	if itf == nil {
		return true
	}

	v := reflect.ValueOf(itf)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
