package muon

import (
	"context"
	"testing"
)

func TestGlobal_SetAndUse(t *testing.T) {
	ctx := context.Background()

	logger, logs := newObservedLogger(LevelVerbose)
	SetGlobal(New(logger))
	t.Cleanup(func() { SetGlobal(nil) })

	add := Func("add", addFn)
	result, err := add(ctx, 2, 3)
	if err != nil || result != 5 {
		t.Fatalf("add() = %v, %v", result, err)
	}
	if logs.Len() != 2 {
		t.Errorf("got %d lines via global instrumentor, want 2", logs.Len())
	}

	if _, ok := Current(); ok {
		t.Error("Current() should be absent after the call settled")
	}
}

func TestGlobal_GPanicsWhenUnset(t *testing.T) {
	SetGlobal(nil)
	defer func() {
		if recover() == nil {
			t.Error("G() must panic when the global is unset")
		}
	}()
	_ = G()
}

func TestGlobal_FallbackWithoutSet(t *testing.T) {
	SetGlobal(nil)
	t.Cleanup(func() { SetGlobal(nil) })

	// Package-level helpers fall back to a default instrumentor
	fn := Method(nil, "noop", func(ctx context.Context, args ...any) (any, error) {
		return nil, nil
	})
	if _, err := fn(context.Background()); err != nil {
		t.Errorf("fallback instrumentor errored: %v", err)
	}
}

func TestGlobal_FallbackConstructedOnce(t *testing.T) {
	ctx := context.Background()
	SetGlobal(nil)
	t.Cleanup(func() { SetGlobal(nil) })

	// Every package-level helper must share one fallback instrumentor,
	// one registry, one monotonic id sequence.
	if getGlobal() != getGlobal() {
		t.Fatal("getGlobal() built a fresh instrumentor per call")
	}

	p := NewPromise()
	fetch := Func("fetch", func(ctx context.Context, args ...any) (any, error) {
		return p, nil
	})
	_, _ = fetch(ctx)

	if _, ok := Current(); !ok {
		t.Error("Current() absent while a package-level decorated call is in flight")
	}

	p.Resolve(nil)
	waitFor(t, func() bool {
		_, ok := Current()
		return !ok
	})

	first := getGlobal().Registry().Allocate()
	second := getGlobal().Registry().Allocate()
	if second != first+1 {
		t.Errorf("id sequence not shared across package-level calls: %d then %d", first, second)
	}
}
