package trace

import (
	"strconv"
	"strings"
	"testing"

	"github.com/qbriceno/branchsim/counter"
)

func TestNormalizeDropsUnconditionalRecords(t *testing.T) {
	raw := strings.Join([]string{
		"x 1 0 x x x x 1f", // conditional bit 0: unconditional, dropped
		"x 1 1 x x x x 2a", // conditional bit 1, taken: kept
		"x 0 1 x x x x 3b", // conditional bit 1, not taken: kept
	}, "\n") + "\n"

	var out strings.Builder
	n, err := Normalize(strings.NewReader(raw), &out)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if n != 2 {
		t.Fatalf("wrote %d lines, want 2", n)
	}
	want := "42 T\n59 N\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestNormalizeRejectsShortRecords(t *testing.T) {
	_, err := Normalize(strings.NewReader("x 1 1\n"), &strings.Builder{})
	if err == nil {
		t.Fatalf("expected an error for a record with too few fields")
	}
}

// TestNormalizeRoundTripIsIdempotent exercises property 8: running
// already-normalized trace text (decimal PC, "T"/"N", with the
// conditional bit already implied by every record's presence) back
// through a record shape Normalize understands reproduces the same
// events unchanged.
func TestNormalizeRoundTripIsIdempotent(t *testing.T) {
	// Shape each already-normalized event as a minimal raw record so a
	// second pass through Normalize is a faithful round trip: field 1 =
	// taken bit, field 2 = conditional bit (always 1 here), field 7 = hex
	// PC.
	raw := "x 1 1 x x x x 0\nx 0 1 x x x x 1\nx 1 1 x x x x a\n"

	var first strings.Builder
	if _, err := Normalize(strings.NewReader(raw), &first); err != nil {
		t.Fatalf("first Normalize: %v", err)
	}

	// Re-derive a raw-shaped record set from the normalized output and
	// normalize again; the resulting trace text must be identical.
	events, err := ReadAll(strings.NewReader(first.String()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	var rebuilt strings.Builder
	for _, ev := range events {
		taken := "0"
		if ev.Actual == counter.Taken {
			taken = "1"
		}
		rebuilt.WriteString("x " + taken + " 1 x x x x " + strconv.FormatUint(ev.PC, 16) + "\n")
	}
	var second strings.Builder
	if _, err := Normalize(strings.NewReader(rebuilt.String()), &second); err != nil {
		t.Fatalf("second Normalize: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("round trip not idempotent: first=%q second=%q", first.String(), second.String())
	}
}
