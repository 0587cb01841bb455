// ═══════════════════════════════════════════════════════════════════════════
// Predictor Dispatch
// ═══════════════════════════════════════════════════════════════════════════
//
// The source uses class inheritance for shared PHT ownership and
// predict/accounting scaffolding. Re-architected here as composition: a
// Kind sum type the driver dispatches on, a Config value every constructor
// consumes, and a Predictor interface every variant satisfies uniformly.

package predictor

import (
	"fmt"

	"github.com/qbriceno/branchsim/counter"
)

// Kind names one of the six supported predictor algorithms.
type Kind string

const (
	KindOneLevel       Kind = "one-level"
	KindTwoLevelGlobal Kind = "two-level-global"
	KindGShare         Kind = "gshare"
	KindTwoLevelLocal  Kind = "two-level-local"
	KindTournament     Kind = "tournament"
	KindTAGE           Kind = "tage"
)

// Config is the flat, explicit construction parameters every predictor
// variant is built from, no builder, no options pattern.
type Config struct {
	CounterBits int
	Init        int
	PHTSize     int
	Seed        int64 // only consumed by TAGE's allocation PRNG
}

// Predictor is the uniform per-event interface every variant satisfies.
type Predictor interface {
	// Observe predicts pc's outcome, updates internal state with actual,
	// and returns the prediction that was made before the update.
	Observe(pc uint64, actual counter.Outcome) counter.Outcome
	Stats() Stats
	Name() string
}

// New builds the predictor named by kind from cfg.
func New(kind Kind, cfg Config) (Predictor, error) {
	switch kind {
	case KindOneLevel:
		return NewOneLevel(cfg)
	case KindTwoLevelGlobal:
		return NewTwoLevelGlobal(cfg)
	case KindGShare:
		return NewGShare(cfg)
	case KindTwoLevelLocal:
		return NewTwoLevelLocal(cfg)
	case KindTournament:
		return NewTournament(cfg)
	case KindTAGE:
		return NewTAGE(cfg)
	default:
		return nil, fmt.Errorf("unknown predictor method %q", kind)
	}
}
