package fields

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/quarklabs/muon"
)

func TestCorrelation_Base16(t *testing.T) {
	got := Correlation(0x2a)
	want := muon.Field{Key: "correlation_id", Value: "2a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Correlation() mismatch (-want +got):\n%s", diff)
	}
}

func TestDuration(t *testing.T) {
	got := Duration(1500 * time.Microsecond)
	if got.Key != "duration_ms" || got.Value != 1.5 {
		t.Errorf("Duration() = %+v", got)
	}
}

func TestNamingConsistency(t *testing.T) {
	tests := []struct {
		field muon.Field
		key   string
	}{
		{Subject("Git"), "subject"},
		{Method("fetch"), "method"},
		{Outcome("completed"), "outcome"},
		{Args("a=1"), "args"},
		{DurationMs(2), "duration_ms"},
	}
	for _, tt := range tests {
		if tt.field.Key != tt.key {
			t.Errorf("field key = %q, want %q", tt.field.Key, tt.key)
		}
	}
}
