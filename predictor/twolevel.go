// ═══════════════════════════════════════════════════════════════════════════
// Two-Level Global History and GShare
// ═══════════════════════════════════════════════════════════════════════════
//
// TwoLevelGlobal and GShare differ only in how they fold the global history
// register into a PHT address; everything else (read-before-shift-before-
// update ordering, table shape, accounting) is identical. twoLevelCore
// factors that shared machinery out so each variant supplies only its own
// addressing function.

package predictor

import "github.com/qbriceno/branchsim/counter"

type twoLevelCore struct {
	pht       *PatternHistoryTable
	ghr       *counter.ShiftRegister
	indexBits int
	stats     Stats
	address   func(cutpc, ghrVal uint64) uint64
}

func newTwoLevelCore(cfg Config, address func(cutpc, ghrVal uint64) uint64) (*twoLevelCore, error) {
	pht, err := NewPatternHistoryTable(cfg.PHTSize, cfg.CounterBits, cfg.Init)
	if err != nil {
		return nil, err
	}
	indexBits := pht.IndexBits()
	return &twoLevelCore{
		pht:       pht,
		ghr:       counter.NewShiftRegister(indexBits),
		indexBits: indexBits,
		address:   address,
	}, nil
}

// observe computes cutpc once, folds in the GHR value, predicts, shifts the
// actual outcome into the GHR, then updates the same address's counter.
// The GHR shift between read and update is load-bearing: it's what makes
// the next event's addressing see this event's outcome.
func (c *twoLevelCore) observe(pc uint64, actual counter.Outcome) counter.Outcome {
	cutpc := counter.BitRange(pc, c.indexBits, 0)
	addr := c.address(cutpc, c.ghr.Value())
	prediction := c.pht.Predict(addr)
	c.ghr.ShiftIn(actual == counter.Taken)
	c.pht.Update(addr, actual)
	c.stats.Record(prediction, actual)
	return prediction
}

// TwoLevelGlobal addresses its PHT with the raw global history register
// value, ignoring the PC entirely.
type TwoLevelGlobal struct {
	core *twoLevelCore
}

// NewTwoLevelGlobal builds a TwoLevelGlobal predictor from cfg.
func NewTwoLevelGlobal(cfg Config) (*TwoLevelGlobal, error) {
	core, err := newTwoLevelCore(cfg, func(cutpc, ghrVal uint64) uint64 { return ghrVal })
	if err != nil {
		return nil, err
	}
	return &TwoLevelGlobal{core: core}, nil
}

func (p *TwoLevelGlobal) Observe(pc uint64, actual counter.Outcome) counter.Outcome {
	return p.core.observe(pc, actual)
}
func (p *TwoLevelGlobal) Stats() Stats  { return p.core.stats }
func (p *TwoLevelGlobal) Name() string  { return "two-level-global" }
func (p *TwoLevelGlobal) GHRWidth() int { return p.core.indexBits }

// GShare addresses its PHT with the low PC bits XOR'd against the global
// history register value.
type GShare struct {
	core *twoLevelCore
}

// NewGShare builds a GShare predictor from cfg.
func NewGShare(cfg Config) (*GShare, error) {
	core, err := newTwoLevelCore(cfg, func(cutpc, ghrVal uint64) uint64 { return cutpc ^ ghrVal })
	if err != nil {
		return nil, err
	}
	return &GShare{core: core}, nil
}

func (p *GShare) Observe(pc uint64, actual counter.Outcome) counter.Outcome {
	return p.core.observe(pc, actual)
}
func (p *GShare) Stats() Stats { return p.core.stats }
func (p *GShare) Name() string { return "gshare" }

// GShareDebugSnapshot is the diagnostic view the source's
// print_debug_stats exposed: the GHR's declared width and its current
// contents, for callers that want to log predictor internals mid-run.
type GShareDebugSnapshot struct {
	HistoryWidth int
	HistoryValue uint64
}

// DebugSnapshot returns the current GHR width and value.
func (p *GShare) DebugSnapshot() GShareDebugSnapshot {
	return GShareDebugSnapshot{HistoryWidth: p.core.indexBits, HistoryValue: p.core.ghr.Value()}
}
