// ═══════════════════════════════════════════════════════════════════════════
// Two-Level Local History
// ═══════════════════════════════════════════════════════════════════════════
//
// 128 per-PC local history registers, each the width of the PHT's index.
// The register to use is chosen by the top 7 bits of the PC's 32-bit
// rendering, fixed at 32 bits by source regardless of the simulator's
// configured general PC width, since the underlying arithmetic (shift by
// 25, mask 7 bits) doesn't depend on how many unused high bits the PC
// value carries above that.

package predictor

import "github.com/qbriceno/branchsim/counter"

const localHistoryTableSize = 128

// TwoLevelLocal keeps one history register per entry of a 128-slot local
// history table, selected by the PC's top 7 bits.
type TwoLevelLocal struct {
	pht       *PatternHistoryTable
	local     [localHistoryTableSize]*counter.ShiftRegister
	indexBits int
	stats     Stats
}

// NewTwoLevelLocal builds a TwoLevelLocal predictor from cfg.
func NewTwoLevelLocal(cfg Config) (*TwoLevelLocal, error) {
	pht, err := NewPatternHistoryTable(cfg.PHTSize, cfg.CounterBits, cfg.Init)
	if err != nil {
		return nil, err
	}
	p := &TwoLevelLocal{pht: pht, indexBits: pht.IndexBits()}
	for i := range p.local {
		p.local[i] = counter.NewShiftRegister(p.indexBits)
	}
	return p, nil
}

func localRegisterIndex(pc uint64) uint64 {
	return counter.BitRange(pc, 32, 25)
}

// Observe looks up pc's local history register, predicts from its current
// value, shifts the actual outcome into that same register, then updates
// the PHT entry the prediction was read from.
func (p *TwoLevelLocal) Observe(pc uint64, actual counter.Outcome) counter.Outcome {
	reg := p.local[localRegisterIndex(pc)]
	addr := reg.Value()
	prediction := p.pht.Predict(addr)
	reg.ShiftIn(actual == counter.Taken)
	p.pht.Update(addr, actual)
	p.stats.Record(prediction, actual)
	return prediction
}

func (p *TwoLevelLocal) Stats() Stats { return p.stats }
func (p *TwoLevelLocal) Name() string { return "two-level-local" }
