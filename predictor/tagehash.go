// ═══════════════════════════════════════════════════════════════════════════
// TAGE Index/Tag Hash
// ═══════════════════════════════════════════════════════════════════════════
//
// Emulates the reference TAGE's per-table geometric history lengths
// without actually storing one history copy per table: a single 80-bit GHR
// is folded, by XOR, over successively wider windows as the table number
// grows. This is the one piece of TAGE where the exact fold widths matter
// bit-for-bit; they are reproduced here exactly as derived from the
// source, not "cleaned up" into a parametric formula.

package predictor

import "github.com/qbriceno/branchsim/counter"

// tageIndexTagHash computes the (index, tag) pair for tagged table comp
// (1..4), given the PC and the GHR rendered as its fixed-width binary
// string.
func tageIndexTagHash(pc uint64, ghr string, comp int) (index int, tag int) {
	indexPC := counter.BitRange(pc, 10, 0) ^ counter.BitRange(pc, 20, 10)
	tagPC := counter.BitRange(pc, 8, 0)

	indexGHR := counter.BinStrBitRange(ghr, 10, 0)
	tagR1 := counter.BinStrBitRange(ghr, 8, 0)
	tagR2 := counter.BinStrBitRange(ghr, 7, 0)

	for j := 1; j < (1 << uint(comp-1)); j++ {
		indexGHR ^= counter.BinStrBitRange(ghr, (j+1)*10, j*10)
	}
	for j := 1; j < ((1<<uint(comp-1))*10)/8; j++ {
		tagR1 ^= counter.BinStrBitRange(ghr, (j+1)*8, j*8)
	}
	for j := 1; j < ((1<<uint(comp-1))*10)/7; j++ {
		tagR2 ^= counter.BinStrBitRange(ghr, (j+1)*7, j*7)
	}

	idx := indexPC ^ indexGHR
	tg := tagPC ^ tagR1 ^ (tagR2 << 1)
	return int(idx), int(tg)
}
