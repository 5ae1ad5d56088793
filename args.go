package muon

import "strings"

// formatArgs converts a positional argument list into a comma-joined string
// of name=value fragments, in argument order. Arguments without a known
// parameter name render as bare values. A custom formatter returning
// ok=false omits its fragment entirely. Formatting never panics; failures
// degrade through Loggable's fallback.
func formatArgs(args []any, names []string, o *options) string {
	if o.suppressArgs || len(args) == 0 {
		return ""
	}

	var b strings.Builder
	first := true
	for i, arg := range args {
		var text string
		if f, ok := o.argFormatters[i]; ok {
			t, keep := safeFormatArg(f, arg)
			if !keep {
				continue
			}
			text = t
		} else {
			text = Loggable(arg, o.sanitize)
		}

		if !first {
			b.WriteString(", ")
		}
		first = false

		if i < len(names) && names[i] != "" {
			b.WriteString(names[i])
			b.WriteByte('=')
		}
		b.WriteString(text)
	}
	return b.String()
}

// safeFormatArg guards a user-supplied formatter; a panic suppresses only
// the fragment, not the call.
func safeFormatArg(f ArgFormatter, arg any) (text string, keep bool) {
	defer func() {
		if r := recover(); r != nil {
			text, keep = "", false
		}
	}()
	return f(arg)
}
