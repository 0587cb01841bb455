// ═══════════════════════════════════════════════════════════════════════════
// Trace Reading
// ═══════════════════════════════════════════════════════════════════════════
//
// A trace is UTF-8 text, one branch event per line: "<decimal-pc> <T|N>"
// with optional trailing whitespace and tolerated blank trailing lines.
// Reader streams events off an io.Reader one at a time rather than
// materializing the whole trace, since real traces run into the millions
// of lines.

package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qbriceno/branchsim/counter"
)

// Event is one branch instance: its PC and the outcome it actually took.
type Event struct {
	PC     uint64
	Actual counter.Outcome
}

// ParseError reports a malformed trace line, including its 1-based line
// number so a caller can point the user at the offending input.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trace line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader streams Events off an underlying io.Reader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r for line-at-a-time trace parsing.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next event, or ok=false once the trace is exhausted.
// Blank lines (including trailing ones) are skipped rather than treated
// as malformed.
func (r *Reader) Next() (ev Event, ok bool, err error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		ev, err = parseLine(line)
		if err != nil {
			return Event{}, false, &ParseError{Line: r.line, Text: line, Err: err}
		}
		return ev, true, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Event{}, false, err
	}
	return Event{}, false, nil
}

func parseLine(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Event{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	pc, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Event{}, fmt.Errorf("pc %q: %w", fields[0], err)
	}
	var actual counter.Outcome
	switch fields[1] {
	case "T":
		actual = counter.Taken
	case "N":
		actual = counter.NotTaken
	default:
		return Event{}, fmt.Errorf("outcome %q: want T or N", fields[1])
	}
	return Event{PC: pc, Actual: actual}, nil
}

// ReadAll drains r into a slice, for callers (tests, small traces) that
// want the whole sequence at once rather than streaming it.
func ReadAll(r io.Reader) ([]Event, error) {
	tr := NewReader(r)
	var events []Event
	for {
		ev, ok, err := tr.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return events, nil
		}
		events = append(events, ev)
	}
}
