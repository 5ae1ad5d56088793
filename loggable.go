package muon

import (
	"fmt"
	"reflect"

	"github.com/bytedance/sonic"
)

// Nameable lets a type customize how its instances are rendered in log
// prefixes. The wrapper checks for it at call time; types that do not
// implement it are rendered by their type name.
type Nameable interface {
	// LogName returns the display name used in log prefixes.
	LogName() string
}

// Sanitizer transforms a value during loggable conversion, keyed by the
// field or parameter name it belongs to. Returning the value unchanged keeps
// it; returning a replacement (e.g. "<redacted>") substitutes it.
type Sanitizer func(key string, value any) any

// LoggableName returns the display name for an instance: its LogName if it
// implements Nameable, otherwise its dereferenced type name. A nil instance
// (static/free function) yields the empty string.
func LoggableName(instance any) string {
	if instance == nil {
		return ""
	}
	if n, ok := instance.(Nameable); ok {
		return n.LogName()
	}

	t := reflect.TypeOf(instance)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%T", instance)
}

// Loggable converts an arbitrary value to a human-readable string, applying
// the sanitizer to object fields before stringifying. It never panics;
// internal conversion failures degrade to a fallback string.
func Loggable(value any, sanitize Sanitizer) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = "<unloggable>"
		}
	}()

	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return fmt.Sprint(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	v := value
	if sanitize != nil {
		v = sanitizeValue("", value, sanitize, 0)
	}

	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<unloggable: %v>", err)
	}
	return string(data)
}

// maxSanitizeDepth bounds the recursive walk; deeper values pass through to
// the JSON encoder untouched.
const maxSanitizeDepth = 4

// sanitizeValue walks maps, structs, and slices, applying the sanitizer to
// each named field before the value is encoded.
func sanitizeValue(key string, value any, sanitize Sanitizer, depth int) any {
	value = sanitize(key, value)
	if value == nil || depth >= maxSanitizeDepth {
		return value
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return value
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			out[k] = sanitizeValue(k, iter.Value().Interface(), sanitize, depth+1)
		}
		return out

	case reflect.Struct:
		t := rv.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = sanitizeValue(f.Name, rv.Field(i).Interface(), sanitize, depth+1)
		}
		return out

	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = sanitizeValue(key, rv.Index(i).Interface(), sanitize, depth+1)
		}
		return out

	default:
		return value
	}
}
