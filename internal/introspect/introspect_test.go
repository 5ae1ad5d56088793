package introspect

import (
	"context"
	"testing"
)

func namedFunc(a, b int) int { return a + b }

func TestFuncName(t *testing.T) {
	if got := FuncName(namedFunc); got != "namedFunc" {
		t.Errorf("FuncName(namedFunc) = %q", got)
	}
	if got := FuncName(nil); got != "" {
		t.Errorf("FuncName(nil) = %q, want empty", got)
	}
	if got := FuncName(42); got != "" {
		t.Errorf("FuncName(non-func) = %q, want empty", got)
	}
}

func TestFuncName_MethodValue(t *testing.T) {
	ctx := context.Background()
	got := FuncName(ctx.Err)
	if got != "Err" {
		t.Errorf("FuncName(method value) = %q, want %q", got, "Err")
	}
}

func TestParameters(t *testing.T) {
	params := Parameters(namedFunc)
	if len(params) != 2 {
		t.Fatalf("Parameters() returned %d entries, want 2", len(params))
	}
	// Go erases parameter names; every entry is a gap
	for i, p := range params {
		if p != "" {
			t.Errorf("params[%d] = %q, want gap", i, p)
		}
	}

	if Parameters(nil) != nil {
		t.Error("Parameters(nil) should be nil")
	}
	if Parameters("nope") != nil {
		t.Error("Parameters(non-func) should be nil")
	}
}

func TestIsFunc(t *testing.T) {
	if !IsFunc(namedFunc) {
		t.Error("IsFunc(func) = false")
	}
	if IsFunc(nil) || IsFunc("s") {
		t.Error("IsFunc should be false for non-functions")
	}
}
