// ═══════════════════════════════════════════════════════════════════════════
// Shared Accounting
// ═══════════════════════════════════════════════════════════════════════════
//
// Every predictor variant funnels its per-event prediction through the same
// good/miss/none bookkeeping. Stats is the shared value each variant holds
// as a plain member (no global counters, no inheritance scaffolding).

package predictor

import "github.com/qbriceno/branchsim/counter"

// Stats holds the aggregate good/miss/none counts for one predictor run.
type Stats struct {
	Good int
	Miss int
	None int
}

// Record classifies prediction against actual and bumps the matching
// counter. actual is always concrete (Taken or NotTaken); prediction may be
// Unknown for weakable counters.
func (s *Stats) Record(prediction, actual counter.Outcome) {
	switch {
	case prediction == actual:
		s.Good++
	case prediction == counter.Unknown:
		s.None++
	default:
		s.Miss++
	}
}

// Total is the number of events accounted for so far.
func (s Stats) Total() int { return s.Good + s.Miss + s.None }

// HitRate is Good/Total*100, or 0 when Total is 0 (undefined, guarded).
func (s Stats) HitRate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Good) / float64(s.Total()) * 100
}

// MissRate is Miss/Total*100 (mispredictions only, not no-predictions),
// or 0 when Total is 0.
func (s Stats) MissRate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Miss) / float64(s.Total()) * 100
}
