// Package introspect resolves function metadata used by the instrumentation
// wrapper at decoration time.
package introspect

import (
	"reflect"
	"runtime"
	"strings"
)

// FuncName returns the bare name of fn as declared in source, without the
// package path or receiver qualifier. Returns "" for nil or non-function
// values.
func FuncName(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}

	pc := runtime.FuncForPC(v.Pointer())
	if pc == nil {
		return ""
	}

	name := pc.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	// Method values carry a -fm suffix; closures carry funcN suffixes.
	name = strings.TrimSuffix(name, "-fm")
	return name
}

// Parameters returns one entry per declared parameter of fn. Go erases
// parameter names at compile time, so every entry is a gap (""); callers
// that want named fragments supply names explicitly. Returns nil for nil or
// non-function values.
func Parameters(fn any) []string {
	if fn == nil {
		return nil
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return nil
	}
	return make([]string, t.NumIn())
}

// IsFunc reports whether fn is a callable function value.
func IsFunc(fn any) bool {
	return fn != nil && reflect.TypeOf(fn).Kind() == reflect.Func
}
