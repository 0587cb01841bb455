// ═══════════════════════════════════════════════════════════════════════════
// Shift Register - fixed-width history register
// ═══════════════════════════════════════════════════════════════════════════
//
// Every history-tracking predictor (global, local, TAGE's GHR) is built on
// the same primitive: a fixed-width, oldest-first bit queue. shift_in drops
// the oldest bit and appends the newest; the register is readable either as
// an unsigned integer (oldest bit = MSB) or as a '0'/'1' string in the same
// order, which is what TAGE's geometric history folding slices directly.

package counter

import "strings"

// ShiftRegister is an ordered, fixed-width sequence of bits, oldest-first.
type ShiftRegister struct {
	width int
	bits  []bool
}

// NewShiftRegister builds a register of the given width, all bits zero.
func NewShiftRegister(width int) *ShiftRegister {
	return &ShiftRegister{width: width, bits: make([]bool, width)}
}

// Width returns the register's declared bit width.
func (r *ShiftRegister) Width() int { return r.width }

// ShiftIn drops the oldest bit and appends bit as the newest, preserving
// Width() bits at all times.
func (r *ShiftRegister) ShiftIn(bit bool) {
	copy(r.bits, r.bits[1:])
	r.bits[len(r.bits)-1] = bit
}

// Value renders the register as an unsigned integer, oldest bit = MSB.
// Only meaningful for Width() <= 64; TAGE's 80-bit GHR is read exclusively
// through BinaryString, never Value.
func (r *ShiftRegister) Value() uint64 {
	var v uint64
	for _, b := range r.bits {
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v
}

// BinaryString renders the register as a string of '0'/'1' characters in
// the same oldest-first order as Value.
func (r *ShiftRegister) BinaryString() string {
	var sb strings.Builder
	sb.Grow(r.width)
	for _, b := range r.bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
