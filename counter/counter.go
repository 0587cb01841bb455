// ═══════════════════════════════════════════════════════════════════════════
// Saturating and Weakable Counters
// ═══════════════════════════════════════════════════════════════════════════
//
// SaturatingCounter is the n-bit up/down counter every PHT entry is built
// from: BumpUp/BumpDown clamp at the endpoints rather than wrapping.
// WeakableCounter adds the asymmetric "weak/unknown" band around the
// midpoint that TAGE's allocation policy depends on: the band spans the
// two states straddling the midpoint, not a single centered value, and
// that asymmetry must survive bit-for-bit.

package counter

// SaturatingCounter is an n-bit state machine clamped to [0, 2^bits-1].
type SaturatingCounter struct {
	bits  int
	state int
}

// NewSaturatingCounter builds a counter of the given bit width, initialized
// to init. init is not range-checked here; callers validate configuration
// once at startup (see runConfig.validate in cmd/branchsim).
func NewSaturatingCounter(bits, init int) *SaturatingCounter {
	return &SaturatingCounter{bits: bits, state: init}
}

// Bits reports the counter's declared width.
func (c *SaturatingCounter) Bits() int { return c.bits }

// Max is the highest representable state, 2^bits-1.
func (c *SaturatingCounter) Max() int { return (1 << c.bits) - 1 }

// Midpoint is 2^(bits-1), the hard-state decision boundary.
func (c *SaturatingCounter) Midpoint() int { return 1 << (c.bits - 1) }

// State returns the raw counter value.
func (c *SaturatingCounter) State() int { return c.state }

// SetState forces the raw counter value, used by TAGE's allocation policy
// to seed a freshly-allocated entry at a specific initial state.
func (c *SaturatingCounter) SetState(state int) { c.state = state }

// MaskState ANDs the raw state with mask in place. This is TAGE's periodic
// useful-bit decay primitive (&=1 keeps the LSB, &=2 keeps the MSB): it is
// intentionally this coarse, alternating which bit survives a sweep rather
// than shifting the whole counter, because that is the cheap per-entry
// operation a hardware decay pass would actually perform.
func (c *SaturatingCounter) MaskState(mask int) { c.state &= mask }

// BumpUp increments, saturating at Max().
func (c *SaturatingCounter) BumpUp() {
	if c.state+1 > c.Max() {
		return
	}
	c.state++
}

// BumpDown decrements, saturating at 0.
func (c *SaturatingCounter) BumpDown() {
	if c.state == 0 {
		return
	}
	c.state--
}

// Update bumps the counter toward actual: up on Taken, down on NotTaken.
// Unknown never reaches here; an actual trace outcome is always concrete.
func (c *SaturatingCounter) Update(actual Outcome) {
	switch actual {
	case Taken:
		c.BumpUp()
	case NotTaken:
		c.BumpDown()
	}
}

// HardState returns 1 if state >= Midpoint, else 0, as an Outcome. Never
// Unknown: this is the plain saturating-counter reading used by TAGE's
// tagged tables.
func (c *SaturatingCounter) HardState() Outcome {
	if c.state >= c.Midpoint() {
		return Taken
	}
	return NotTaken
}

// HardBit is HardState as a raw 0/1, used where the caller wants a selector
// rather than a branch outcome (Tournament's meta-counter chooses between
// two sub-predictors, it does not predict a branch itself).
func (c *SaturatingCounter) HardBit() int {
	if c.state >= c.Midpoint() {
		return 1
	}
	return 0
}

// WeakableCounter is a SaturatingCounter with an asymmetric "weak" band at
// the midpoint: state > M is Taken, state < M-1 is NotTaken, and the two
// states in between ({M-1, M}) are Unknown. Built by embedding the
// saturating machinery and adding the weak reading on top, rather than
// duplicating BumpUp/BumpDown/Max/Midpoint on a second type.
type WeakableCounter struct {
	SaturatingCounter
}

// NewWeakableCounter builds a weakable counter of the given bit width.
func NewWeakableCounter(bits, init int) *WeakableCounter {
	return &WeakableCounter{SaturatingCounter: SaturatingCounter{bits: bits, state: init}}
}

// SoftState is the weak-banded reading: Taken above the midpoint, NotTaken
// a full step below it, Unknown in the two-state band straddling it.
func (c *WeakableCounter) SoftState() Outcome {
	m := c.Midpoint()
	switch {
	case c.state > m:
		return Taken
	case c.state < m-1:
		return NotTaken
	default:
		return Unknown
	}
}
