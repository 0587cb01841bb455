// ═══════════════════════════════════════════════════════════════════════════
// Tournament Predictor
// ═══════════════════════════════════════════════════════════════════════════
//
// Runs GShare and OneLevel in parallel on every event: both always update
// their own tables, and Tournament arbitrates between their predictions
// with a per-PC meta-counter indexed the same way OneLevel indexes its own
// table.
// The meta-counter is a plain hard-state saturating counter, not weakable:
// it is a selector between two sub-predictors, not a branch prediction in
// its own right.

package predictor

import "github.com/qbriceno/branchsim/counter"

// Tournament arbitrates between a GShare and a OneLevel sub-predictor via a
// per-PC meta-counter.
type Tournament struct {
	gshare    *GShare
	oneLevel  *OneLevel
	meta      []*counter.SaturatingCounter
	indexBits int
	stats     Stats
}

// NewTournament builds a Tournament predictor from cfg, constructing both
// sub-predictors with the same counter width, init value, and PHT size.
func NewTournament(cfg Config) (*Tournament, error) {
	gshare, err := NewGShare(cfg)
	if err != nil {
		return nil, err
	}
	oneLevel, err := NewOneLevel(cfg)
	if err != nil {
		return nil, err
	}
	meta := make([]*counter.SaturatingCounter, cfg.PHTSize)
	for i := range meta {
		meta[i] = counter.NewSaturatingCounter(cfg.CounterBits, cfg.Init)
	}
	return &Tournament{
		gshare:    gshare,
		oneLevel:  oneLevel,
		meta:      meta,
		indexBits: gshare.core.indexBits,
	}, nil
}

// Observe runs both sub-predictors, selects one via the meta-counter,
// accounts the chosen prediction, then updates the meta-counter based on
// which sub-predictor (if either) got it right.
func (p *Tournament) Observe(pc uint64, actual counter.Outcome) counter.Outcome {
	cutpc := counter.BitRange(pc, p.indexBits, 0)
	metaCounter := p.meta[cutpc]
	selected := metaCounter.HardBit()

	predictions := [2]counter.Outcome{
		p.gshare.Observe(pc, actual),
		p.oneLevel.Observe(pc, actual),
	}
	chosen := predictions[selected]
	p.stats.Record(chosen, actual)

	switch {
	case predictions[0] == predictions[1]:
		// agree: no change
	case predictions[0] == actual:
		metaCounter.BumpDown()
	case predictions[1] == actual:
		metaCounter.BumpUp()
	}

	return chosen
}

func (p *Tournament) Stats() Stats { return p.stats }
func (p *Tournament) Name() string { return "tournament" }
