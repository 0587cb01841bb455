// ═══════════════════════════════════════════════════════════════════════════
// TAGE Tagged Table
// ═══════════════════════════════════════════════════════════════════════════
//
// Each of TAGE's T1..T4 tables is a fixed 1024-entry array (10 index bits).
// Every entry holds a plain saturating counter (hard state only; the tagged
// tables never use the weak band, which only the one-level-family PHTs and
// TAGE's bimodal base read), an 8-bit tag, and a 2-bit useful-bits counter
// initialized to 0.

package predictor

import "github.com/qbriceno/branchsim/counter"

const (
	taggedTableIndexBits = 10
	taggedTableEntries   = 1 << taggedTableIndexBits
)

type taggedEntry struct {
	counter *counter.SaturatingCounter
	tag     int
	useful  *counter.SaturatingCounter
}

// TaggedTable is one of TAGE's geometric-history tagged tables.
type TaggedTable struct {
	entries [taggedTableEntries]taggedEntry
}

// newTaggedTable builds a 1024-entry tagged table, counters counterBits
// wide initialized to init, tags and useful-bits zeroed.
func newTaggedTable(counterBits, init int) *TaggedTable {
	t := &TaggedTable{}
	for i := range t.entries {
		t.entries[i] = taggedEntry{
			counter: counter.NewSaturatingCounter(counterBits, init),
			tag:     0,
			useful:  counter.NewSaturatingCounter(2, 0),
		}
	}
	return t
}

// Predict reads the hard-state prediction at index, without mutating state.
func (t *TaggedTable) Predict(index int) counter.Outcome {
	return t.entries[index].counter.HardState()
}

// Update bumps the counter at index toward actual.
func (t *TaggedTable) Update(index int, actual counter.Outcome) {
	t.entries[index].counter.Update(actual)
}

// TagAt returns the tag currently stored at index.
func (t *TaggedTable) TagAt(index int) int { return t.entries[index].tag }

// SetTag overwrites the tag stored at index.
func (t *TaggedTable) SetTag(index, tag int) { t.entries[index].tag = tag }

// Useful returns the raw 2-bit useful-bits state at index.
func (t *TaggedTable) Useful(index int) int { return t.entries[index].useful.State() }

// UsefulBumpUp increments the useful-bits counter at index.
func (t *TaggedTable) UsefulBumpUp(index int) { t.entries[index].useful.BumpUp() }

// UsefulBumpDown decrements the useful-bits counter at index.
func (t *TaggedTable) UsefulBumpDown(index int) { t.entries[index].useful.BumpDown() }

// ResetUseful zeroes the useful-bits counter at index, used when a fresh
// entry is allocated.
func (t *TaggedTable) ResetUseful(index int) { t.entries[index].useful.SetState(0) }

// SetCounterState forces the main counter's raw state at index, used to
// seed an allocated entry at the "newly allocated weak" midpoint.
func (t *TaggedTable) SetCounterState(index, state int) { t.entries[index].counter.SetState(state) }

// DecayAllUsefulBumpDown decrements every entry's useful-bits counter by
// one step. This is the fallback decay run when a misprediction finds no
// zero-useful victim anywhere above the provider.
func (t *TaggedTable) DecayAllUsefulBumpDown() {
	for i := range t.entries {
		t.entries[i].useful.BumpDown()
	}
}

// DecayAllUsefulMask ANDs every entry's useful-bits counter with mask. This
// is the periodic alternating &=1/&=2 decay run every 256*1024 events.
func (t *TaggedTable) DecayAllUsefulMask(mask int) {
	for i := range t.entries {
		t.entries[i].useful.MaskState(mask)
	}
}
