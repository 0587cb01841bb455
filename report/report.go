// ═══════════════════════════════════════════════════════════════════════════
// Final Report
// ═══════════════════════════════════════════════════════════════════════════
//
// Formats the end-of-run summary print_stats produced: method, counter
// configuration, pht size, then mispredictions/no-predictions/hit
// predictions/total, then hit rate and miss rate to four decimal places
// (hit = good/total*100, miss = miss/total*100, counted against concrete
// mispredictions alone rather than folding "no prediction" into the miss
// rate).

package report

import (
	"fmt"
	"io"

	"github.com/qbriceno/branchsim/predictor"
)

// Config mirrors the run's predictor configuration, for display only.
type Config struct {
	Method      predictor.Kind
	CounterBits int
	Init        int
	PHTSize     int
}

// Write renders the final report for cfg/stats to w.
func Write(w io.Writer, cfg Config, stats predictor.Stats) error {
	total := stats.Total()

	lines := []string{
		"",
		"\t\t---Sim Result---",
		"Type\t\t Counter Bits\t Counter init\t PHT entries",
		fmt.Sprintf("%s \t %d \t\t %d \t\t %d", cfg.Method, cfg.CounterBits, cfg.Init, cfg.PHTSize),
		"",
		fmt.Sprintf("Mispredictions:\t\t %d", stats.Miss),
		fmt.Sprintf("No Predictions:\t\t %d", stats.None),
		fmt.Sprintf("Hit Predictions:\t %d", stats.Good),
		fmt.Sprintf("Total:\t\t\t %d", total),
		fmt.Sprintf("Hit rate:\t\t %.4f %%", stats.HitRate()),
		fmt.Sprintf("Miss rate:\t\t %.4f %%", stats.MissRate()),
		"",
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
