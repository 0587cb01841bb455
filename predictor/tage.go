// ═══════════════════════════════════════════════════════════════════════════
// TAGE Predictor
// ═══════════════════════════════════════════════════════════════════════════
//
// One bimodal base table (T0, 4096 entries, low 12 PC bits) plus four
// tagged tables (T1..T4) of increasing effective history length. Per
// event: find the longest-history table with a matching tag (the
// provider), predict from it, fall back to the next-longest match (the
// alt-provider) or T0 if none. On misprediction, a useful-bits-driven
// replacement policy may allocate a fresh entry into a longer table; every
// 256*1024 events all useful-bits decay, alternating which half of the
// 2-bit counter survives.
//
// The provider counter is updated with the actual outcome only after
// overall has been read and consulted, so the prediction reflects the
// provider's state at the time of the event rather than its post-update
// state.

package predictor

import (
	"math/rand"

	"github.com/qbriceno/branchsim/counter"
)

const (
	tageBaseIndexBits  = 12
	tageBaseEntries    = 1 << tageBaseIndexBits
	tageGHRWidth       = 80
	tageNumTagged      = 4
	tageDecayInterval  = 256 * 1024
)

// TAGE is the four-tagged-table, bimodal-base predictor.
type TAGE struct {
	base        [tageBaseEntries]*counter.WeakableCounter
	tagged      [tageNumTagged]*TaggedTable
	ghr         *counter.ShiftRegister
	rng         *rand.Rand
	count       int
	msbFlip     bool
	counterBits int
	stats       Stats
}

// NewTAGE builds a TAGE predictor from cfg. TAGE ignores cfg.PHTSize (its
// table shapes are fixed by source) but uses cfg.CounterBits/Init for the
// base table and tagged-table counters, and cfg.Seed to construct its own
// private PRNG for the 1-in-3 allocation choice, never the global
// math/rand source, so runs are reproducible.
func NewTAGE(cfg Config) (*TAGE, error) {
	t := &TAGE{
		ghr:         counter.NewShiftRegister(tageGHRWidth),
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		msbFlip:     true,
		counterBits: cfg.CounterBits,
	}
	for i := range t.base {
		t.base[i] = counter.NewWeakableCounter(cfg.CounterBits, cfg.Init)
	}
	for i := range t.tagged {
		t.tagged[i] = newTaggedTable(cfg.CounterBits, cfg.Init)
	}
	return t, nil
}

func (t *TAGE) midpoint() int { return 1 << (t.counterBits - 1) }

// Observe predicts pc's outcome, then runs the full TAGE update sequence:
// provider-counter update, useful-bits update, accounting, allocation
// policy on misprediction, periodic decay, and GHR shift.
func (t *TAGE) Observe(pc uint64, actual counter.Outcome) counter.Outcome {
	ghrStr := t.ghr.BinaryString()

	var predictions [tageNumTagged + 1]counter.Outcome
	var indices [tageNumTagged + 1]int
	var tags [tageNumTagged + 1]int
	var matched [tageNumTagged + 1]bool

	baseIdx := int(counter.BitRange(pc, tageBaseIndexBits, 0))
	predictions[0] = t.base[baseIdx].SoftState()

	for i := 1; i <= tageNumTagged; i++ {
		idx, tag := tageIndexTagHash(pc, ghrStr, i)
		indices[i], tags[i] = idx, tag
		predictions[i] = t.tagged[i-1].Predict(idx)
		matched[i] = t.tagged[i-1].TagAt(idx) == tag
	}

	providerIdx := 0
	for i := tageNumTagged; i >= 1; i-- {
		if matched[i] {
			providerIdx = i
			break
		}
	}
	overall := predictions[providerIdx]

	altIdx := 0
	for i := providerIdx - 1; i >= 1; i-- {
		if matched[i] {
			altIdx = i
			break
		}
	}
	alt := predictions[altIdx]

	// 1. Update the provider's counter with the actual outcome, now that
	// overall has been read.
	if providerIdx == 0 {
		t.base[baseIdx].Update(actual)
	} else {
		t.tagged[providerIdx-1].Update(indices[providerIdx], actual)
	}

	// 2. Useful-bits update, only when an alt-provider disagreed with the
	// chosen provider.
	if providerIdx != 0 && alt != overall {
		tbl := t.tagged[providerIdx-1]
		idx := indices[providerIdx]
		switch {
		case overall == actual:
			tbl.UsefulBumpUp(idx)
		case overall != counter.Unknown:
			tbl.UsefulBumpDown(idx)
		}
	}

	// 3. Accounting.
	t.stats.Record(overall, actual)

	// 4. Allocation policy, only on a genuine misprediction (never for a
	// weak/unknown overall, which counts as "none" and skips replacement).
	if overall != actual && overall != counter.Unknown {
		t.runReplacementPolicy(providerIdx, indices, tags)
	}

	// 5. Periodic decay.
	t.count++
	if t.count == tageDecayInterval {
		mask := 2
		if t.msbFlip {
			mask = 1
		}
		for _, tbl := range t.tagged {
			tbl.DecayAllUsefulMask(mask)
		}
		t.count = 0
		t.msbFlip = !t.msbFlip
	}

	// 6. Shift the actual outcome into the GHR, unconditionally.
	t.ghr.ShiftIn(actual == counter.Taken)

	return overall
}

// runReplacementPolicy searches for a zero-useful victim above the
// provider, then (if found) a second candidate below it; allocates one of
// the two (or the sole candidate) with a 1-in-3 bias toward the lower one,
// or decays everything if no victim exists above the provider at all.
func (t *TAGE) runReplacementPolicy(providerIdx int, indices, tags [tageNumTagged + 1]int) {
	if providerIdx == tageNumTagged {
		// No table above the provider to search; the source skips both
		// allocation and the decay-all fallback in this specific case.
		return
	}

	tk := 0
	for i := tageNumTagged; i > providerIdx; i-- {
		if t.tagged[i-1].Useful(indices[i]) == 0 {
			tk = i
			break
		}
	}
	if tk == 0 {
		for _, tbl := range t.tagged {
			tbl.DecayAllUsefulBumpDown()
		}
		return
	}

	tj := 0
	for i := tk - 1; i >= 1; i-- {
		if t.tagged[i-1].Useful(indices[i]) == 0 {
			tj = i
			break
		}
	}

	allocate := func(k int) {
		tbl := t.tagged[k-1]
		idx := indices[k]
		tbl.SetTag(idx, tags[k])
		tbl.ResetUseful(idx)
		tbl.SetCounterState(idx, t.midpoint())
	}

	if tj == 0 {
		allocate(tk)
		return
	}
	if t.rng.Intn(3) == 0 {
		allocate(tj)
	} else {
		allocate(tk)
	}
}

func (t *TAGE) Stats() Stats { return t.stats }
func (t *TAGE) Name() string { return "tage" }
