package predictor

import "github.com/qbriceno/branchsim/counter"

// OneLevel addresses its PHT directly with the low log2(pht_size) bits of
// the PC, no history register at all.
type OneLevel struct {
	pht       *PatternHistoryTable
	indexBits int
	stats     Stats
}

// NewOneLevel builds a OneLevel predictor from cfg.
func NewOneLevel(cfg Config) (*OneLevel, error) {
	pht, err := NewPatternHistoryTable(cfg.PHTSize, cfg.CounterBits, cfg.Init)
	if err != nil {
		return nil, err
	}
	return &OneLevel{pht: pht, indexBits: pht.IndexBits()}, nil
}

// Observe predicts pc's outcome, then updates the table with actual.
func (p *OneLevel) Observe(pc uint64, actual counter.Outcome) counter.Outcome {
	addr := counter.BitRange(pc, p.indexBits, 0)
	prediction := p.pht.Predict(addr)
	p.pht.Update(addr, actual)
	p.stats.Record(prediction, actual)
	return prediction
}

// Stats returns the accumulated good/miss/none counts.
func (p *OneLevel) Stats() Stats { return p.stats }

// Name identifies the predictor for CLI output.
func (p *OneLevel) Name() string { return "one-level" }
