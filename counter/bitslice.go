// ═══════════════════════════════════════════════════════════════════════════
// Bit-Range Extraction
// ═══════════════════════════════════════════════════════════════════════════
//
// The source renders PCs and history registers as fixed-width binary
// strings and slices substrings out of them. The observable behavior of
// "slice bits [hi, lo) out of a fixed-width rendering" is identical to a
// plain integer shift-and-mask, so that's what this implementation does,
// except for history registers already held as a binary string (TAGE's
// GHR), where the string itself is sliced directly, since the geometric
// fold windows are defined in terms of the stored string's own length.

package counter

// BitRange extracts bits [lo, hi) of value (lo inclusive, hi exclusive),
// as would slicing a fixed-width binary rendering of value from position
// (len-hi) to (len-lo). Returns 0 when hi == lo.
func BitRange(value uint64, hi, lo int) uint64 {
	if hi == lo {
		return 0
	}
	width := hi - lo
	mask := uint64(1)<<uint(width) - 1
	return (value >> uint(lo)) & mask
}

// BinStrBitRange extracts bits [lo, hi) of a binary string s (as rendered
// by ShiftRegister.BinaryString), using the same len-relative slicing as
// the source: substring from len(s)-hi to len(s)-lo. Returns 0 when
// hi == lo.
func BinStrBitRange(s string, hi, lo int) uint64 {
	if hi == lo {
		return 0
	}
	n := len(s)
	left := n - hi
	right := n - lo
	var v uint64
	for i := left; i < right; i++ {
		v <<= 1
		if s[i] == '1' {
			v |= 1
		}
	}
	return v
}
