package trace

import (
	"errors"
	"strings"
	"testing"

	"github.com/qbriceno/branchsim/counter"
)

func TestReadAllParsesTakenAndNotTaken(t *testing.T) {
	events, err := ReadAll(strings.NewReader("0 T\n1 N\n  2   T  \n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []Event{
		{PC: 0, Actual: counter.Taken},
		{PC: 1, Actual: counter.NotTaken},
		{PC: 2, Actual: counter.Taken},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestReadAllSkipsBlankTrailingLines(t *testing.T) {
	events, err := ReadAll(strings.NewReader("0 T\n\n\n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
}

func TestReadAllRejectsMalformedOutcome(t *testing.T) {
	_, err := ReadAll(strings.NewReader("0 X\n"))
	if err == nil {
		t.Fatalf("expected an error for an invalid outcome character")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Line != 1 {
		t.Fatalf("ParseError.Line = %d, want 1", pe.Line)
	}
}

func TestReadAllRejectsWrongFieldCount(t *testing.T) {
	_, err := ReadAll(strings.NewReader("0 T extra\n"))
	if err == nil {
		t.Fatalf("expected an error for a line with the wrong field count")
	}
}

func TestReadAllRejectsNonNumericPC(t *testing.T) {
	_, err := ReadAll(strings.NewReader("notanumber T\n"))
	if err == nil {
		t.Fatalf("expected an error for a non-numeric pc")
	}
}
