package compactbitset

import (
	"github.com/hupe1980/compactbitset/internal/bitkit"
)

// check validates a bit position against the capacity.
func (b *BitSet) check(i int) error {
	if i < 0 || i >= b.n {
		return &ErrOutOfRange{Pos: i, Len: b.n}
	}
	return nil
}

// Bit returns bit i without bounds validation. Out-of-range positions panic
// like a raw slice index; use Test for the checked variant.
func (b *BitSet) Bit(i int) bool {
	return b.data[i>>3]&(1<<(i&7)) != 0
}

// Test returns bit i, or *ErrOutOfRange if i >= Len().
func (b *BitSet) Test(i int) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	return b.Bit(i), nil
}

// Set sets bit i to true, or returns *ErrOutOfRange if i >= Len().
func (b *BitSet) Set(i int) error { return b.SetTo(i, true) }

// SetTo sets bit i to v, or returns *ErrOutOfRange if i >= Len().
// In-range writes cannot disturb the padding bits, so the invariant holds
// without re-masking.
func (b *BitSet) SetTo(i int, v bool) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.At(i).Set(v)
	return nil
}

// Reset clears bit i, or returns *ErrOutOfRange if i >= Len().
func (b *BitSet) Reset(i int) error { return b.SetTo(i, false) }

// Flip toggles bit i, or returns *ErrOutOfRange if i >= Len().
func (b *BitSet) Flip(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.At(i).Flip()
	return nil
}

// SetAll sets every bit to true.
func (b *BitSet) SetAll() {
	words := b.Words()
	for i := 0; i < words-1; i++ {
		b.setWord(i, b.fullMask())
	}
	if words > 0 {
		b.setWord(words-1, b.lastMask())
	}
}

// ClearAll sets every bit to false.
func (b *BitSet) ClearAll() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// FlipAll inverts every bit in place.
func (b *BitSet) FlipAll() {
	words := b.Words()
	for i := 0; i < words; i++ {
		b.setWord(i, ^b.word(i))
	}
	b.maskTail()
}

// Count returns the number of bits set to true.
func (b *BitSet) Count() int {
	count := 0
	for i, words := 0, b.Words(); i < words; i++ {
		count += bitkit.OnesCount64(b.word(i))
	}
	return count
}

// Any reports whether at least one bit is set.
func (b *BitSet) Any() bool {
	for _, c := range b.data {
		if c != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (b *BitSet) None() bool { return !b.Any() }

// All reports whether every bit is set. Vacuously true for capacity 0.
func (b *BitSet) All() bool {
	words := b.Words()
	for i := 0; i < words-1; i++ {
		if b.word(i) != b.fullMask() {
			return false
		}
	}
	if words > 0 && b.word(words-1) != b.lastMask() {
		return false
	}
	return true
}

// NextSet returns the position of the first set bit at or after i, and
// whether one exists. Positions before 0 are treated as 0.
func (b *BitSet) NextSet(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= b.n {
		return 0, false
	}

	w := i / b.width
	v := b.word(w) &^ (1<<(i%b.width) - 1)
	for words := b.Words(); ; {
		if v != 0 {
			// The padding invariant guarantees the hit is < n.
			return w*b.width + bitkit.TrailingZeros64(v), true
		}
		w++
		if w >= words {
			return 0, false
		}
		v = b.word(w)
	}
}
