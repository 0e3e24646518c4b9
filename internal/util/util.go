// Package util holds the small string and pooling helpers used across the module.
package util

import (
	"reflect"
	"strings"
	"sync"
)

// Must panics if e is not nil. Meant for tests and package-level fixtures.
func Must(e error) {
	if e != nil {
		panic(e)
	}
}

// Must2 returns v or panics if e is not nil.
func Must2[T any](v T, e error) T {
	Must(e)
	return v
}

// IsNil reports whether v is nil or holds a nil pointer, map, slice, func or channel.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func UCase[T ~string](s T) T { return T(strings.ToUpper(string(s))) }

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

// TrimSP strips leading and trailing linear white space.
func TrimSP[T ~string](s T) T { return T(strings.Trim(string(s), " \t\r\n")) }

// EqFold compares two tokens case-insensitively, e.g. header names or parameter names.
func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// Ellipsis cuts s to maxLen runes for use in error messages.
func Ellipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

var sbPool = sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

// GetStringBuilder takes a builder from the pool, return it with [FreeStringBuilder].
func GetStringBuilder() *strings.Builder {
	return sbPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	sbPool.Put(sb)
}
