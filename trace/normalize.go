// ═══════════════════════════════════════════════════════════════════════════
// Trace Normalization
// ═══════════════════════════════════════════════════════════════════════════
//
// Converts a raw branch log (whitespace-separated records; field 1 is the
// taken bit, field 2 the conditional-branch bit, field 7 the hex PC) into
// this simulator's plain "<decimal-pc> <T|N>" trace format. Only records
// with conditional-bit == "1" become trace events; unconditional
// branches carry no prediction decision and are dropped, exactly as the
// source collaborator does.

package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	rawFieldTaken       = 1
	rawFieldConditional = 2
	rawFieldPC          = 7
	rawFieldMinCount    = rawFieldPC + 1
)

// Normalize reads raw log records from r and writes normalized trace
// lines to w, one per conditional-branch record. It returns the count of
// lines written.
func Normalize(r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	lineNo := 0
	written := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < rawFieldMinCount {
			return written, fmt.Errorf("raw log line %d: want at least %d fields, got %d", lineNo, rawFieldMinCount, len(fields))
		}
		if fields[rawFieldConditional] != "1" {
			continue
		}
		pc, err := strconv.ParseUint(fields[rawFieldPC], 16, 64)
		if err != nil {
			return written, fmt.Errorf("raw log line %d: pc %q: %w", lineNo, fields[rawFieldPC], err)
		}
		outcome := "N"
		if fields[rawFieldTaken] == "1" {
			outcome = "T"
		}
		if _, err := fmt.Fprintf(bw, "%d %s\n", pc, outcome); err != nil {
			return written, err
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return written, err
	}
	return written, nil
}
