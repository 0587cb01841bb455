package predictor

import (
	"testing"

	"github.com/qbriceno/branchsim/counter"
)

func TestTwoLevelLocalRegisterIndexSelectsTop7Bits(t *testing.T) {
	if got := localRegisterIndex(0); got != 0 {
		t.Fatalf("pc=0: index = %d, want 0", got)
	}
	// bit 25 set selects local register 1.
	if got := localRegisterIndex(1 << 25); got != 1 {
		t.Fatalf("pc=1<<25: index = %d, want 1", got)
	}
	// all 7 selector bits set (bits 25..31) selects register 127.
	pc := uint64(0x7F) << 25
	if got := localRegisterIndex(pc); got != 127 {
		t.Fatalf("pc=0x7F<<25: index = %d, want 127", got)
	}
	// bits above 31 never affect the selector.
	if got := localRegisterIndex(uint64(1) << 40); got != 0 {
		t.Fatalf("pc=1<<40: index = %d, want 0 (out of the 32-bit window)", got)
	}
}

// TestTwoLevelLocalLocalHistoryFillsIndependently drives the same PC
// (always register 0) through four Taken branches and checks that the
// local history register accumulates 1-bits (0 -> 1 -> 3 -> 7), the
// textbook local-history-table fill sequence for an all-taken branch.
func TestTwoLevelLocalLocalHistoryFillsIndependently(t *testing.T) {
	p, err := NewTwoLevelLocal(Config{CounterBits: 2, Init: 0, PHTSize: 8})
	if err != nil {
		t.Fatalf("NewTwoLevelLocal: %v", err)
	}
	want := []uint64{0, 1, 3, 7}
	reg := p.local[0]
	for i, w := range want {
		if reg.Value() != w {
			t.Fatalf("before event %d, local register value = %d, want %d", i, reg.Value(), w)
		}
		p.Observe(0, counter.Taken)
	}
}

func TestTwoLevelLocalDistinctPCsUseDistinctRegisters(t *testing.T) {
	p, _ := NewTwoLevelLocal(Config{CounterBits: 2, Init: 0, PHTSize: 8})
	pcA := uint64(0)
	pcB := uint64(1) << 25

	p.Observe(pcA, counter.Taken)
	if p.local[1].Value() != 0 {
		t.Fatalf("register 1 should be untouched by activity at register 0, got %d", p.local[1].Value())
	}
	p.Observe(pcB, counter.Taken)
	if p.local[0].Value() != 1 {
		t.Fatalf("register 0 should retain its own history, got %d", p.local[0].Value())
	}
	if p.local[1].Value() != 1 {
		t.Fatalf("register 1 should now hold its own single Taken event, got %d", p.local[1].Value())
	}
}

func TestTwoLevelLocalAccountingInvariant(t *testing.T) {
	p, _ := NewTwoLevelLocal(Config{CounterBits: 2, Init: 0, PHTSize: 8})
	for i := 0; i < 5; i++ {
		p.Observe(uint64(i), counter.Taken)
		if got := p.Stats().Total(); got != i+1 {
			t.Fatalf("after %d events, total = %d, want %d", i+1, got, i+1)
		}
	}
}
