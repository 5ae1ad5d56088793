package muon

import (
	"strings"
	"testing"
)

func buildOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}
	return o
}

func TestFormatArgs_NamesAndGaps(t *testing.T) {
	got := formatArgs([]any{2, 3, "x"}, []string{"a", "", "c"}, buildOptions())
	want := "a=2, 3, c=x"
	if got != want {
		t.Errorf("formatArgs() = %q, want %q", got, want)
	}
}

func TestFormatArgs_NoArgs(t *testing.T) {
	if got := formatArgs(nil, nil, buildOptions()); got != "" {
		t.Errorf("formatArgs(nil) = %q, want empty", got)
	}
}

func TestFormatArgs_SuppressAll(t *testing.T) {
	got := formatArgs([]any{1, 2}, []string{"a", "b"}, buildOptions(WithoutArgs()))
	if got != "" {
		t.Errorf("formatArgs() with WithoutArgs = %q, want empty", got)
	}
}

func TestFormatArgs_SuppressOne(t *testing.T) {
	got := formatArgs([]any{1, "secret", 3}, []string{"a", "b", "c"}, buildOptions(WithoutArg(1)))
	want := "a=1, c=3"
	if got != want {
		t.Errorf("formatArgs() = %q, want %q", got, want)
	}
	if strings.Contains(got, "secret") {
		t.Errorf("suppressed argument leaked: %q", got)
	}
}

func TestFormatArgs_CustomFormatter(t *testing.T) {
	opt := WithArg(0, func(v any) (string, bool) {
		return "custom", true
	})
	got := formatArgs([]any{42}, []string{"a"}, buildOptions(opt))
	if got != "a=custom" {
		t.Errorf("formatArgs() = %q, want %q", got, "a=custom")
	}
}

func TestFormatArgs_PanickingFormatterSuppressesFragment(t *testing.T) {
	opt := WithArg(0, func(v any) (string, bool) {
		panic("formatter bug")
	})
	got := formatArgs([]any{1, 2}, []string{"a", "b"}, buildOptions(opt))
	if got != "b=2" {
		t.Errorf("formatArgs() = %q, want %q", got, "b=2")
	}
}

func TestFormatArgs_Sanitizer(t *testing.T) {
	type creds struct {
		User  string
		Token string
	}
	opt := WithSanitizer(func(key string, value any) any {
		if key == "Token" {
			return "<redacted>"
		}
		return value
	})

	got := formatArgs([]any{creds{User: "u", Token: "hunter2"}}, []string{"creds"}, buildOptions(opt))
	if strings.Contains(got, "hunter2") {
		t.Errorf("sanitizer failed to redact: %q", got)
	}
	if !strings.Contains(got, "<redacted>") {
		t.Errorf("redaction marker missing: %q", got)
	}
}
