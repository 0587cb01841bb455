// ═══════════════════════════════════════════════════════════════════════════
// Pattern History Table
// ═══════════════════════════════════════════════════════════════════════════
//
// The table every one-level-family predictor reads and writes: an array of
// WeakableCounters, sized to a power of two, addressed by a caller-supplied
// index. The table itself knows nothing about how that index is derived;
// that's each predictor variant's own addressing method.

package predictor

import (
	"fmt"
	"math/bits"

	"github.com/qbriceno/branchsim/counter"
)

// PatternHistoryTable is a power-of-two-sized array of WeakableCounters.
type PatternHistoryTable struct {
	entries   []*counter.WeakableCounter
	indexBits int
}

// NewPatternHistoryTable builds a table of size entries (must be a power of
// two), each counter counterBits wide, initialized to init.
func NewPatternHistoryTable(size, counterBits, init int) (*PatternHistoryTable, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("pht size must be a positive power of two, got %d", size)
	}
	t := &PatternHistoryTable{
		entries:   make([]*counter.WeakableCounter, size),
		indexBits: bits.Len(uint(size)) - 1,
	}
	for i := range t.entries {
		t.entries[i] = counter.NewWeakableCounter(counterBits, init)
	}
	return t, nil
}

// IndexBits is ceil(log2(size)), the width of a valid address.
func (t *PatternHistoryTable) IndexBits() int { return t.indexBits }

// Size is the number of entries.
func (t *PatternHistoryTable) Size() int { return len(t.entries) }

// Predict reads the weak-banded prediction at addr without mutating state.
func (t *PatternHistoryTable) Predict(addr uint64) counter.Outcome {
	return t.entries[addr%uint64(len(t.entries))].SoftState()
}

// Update bumps the counter at addr toward actual.
func (t *PatternHistoryTable) Update(addr uint64, actual counter.Outcome) {
	t.entries[addr%uint64(len(t.entries))].Update(actual)
}
