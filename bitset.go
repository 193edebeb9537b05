package compactbitset

import (
	"bytes"
	"encoding/binary"
)

// widthFor returns the narrowest supported word width, in bits, that can
// hold n bits in a single word, capped at 64.
func widthFor(n int) int {
	switch {
	case n <= 8:
		return 8
	case n <= 16:
		return 16
	case n <= 32:
		return 32
	default:
		return 64
	}
}

// BitSet is a fixed-capacity set of bits packed into words of the narrowest
// width that fits the capacity (8, 16, 32 or 64 bits). The capacity is set
// once at construction and never changes.
//
// The zero value is a usable BitSet of capacity 0.
type BitSet struct {
	n     int
	width int
	data  []byte // little-endian words; bits >= n in the last word are always 0
}

// New returns a BitSet of capacity n with all bits cleared.
// A capacity of 0 is valid and yields a degenerate, zero-word set.
// New panics if n is negative.
func New(n int) *BitSet {
	if n < 0 {
		panic("compactbitset: negative capacity")
	}
	w := widthFor(n)
	words := 0
	if n > 0 {
		words = (n + w - 1) / w
	}
	return &BitSet{
		n:     n,
		width: w,
		data:  make([]byte, words*(w/8)),
	}
}

// FromUint returns a BitSet of capacity n initialized from the bit pattern
// of v: bit i of the set is (v >> i) & 1. Bits of v at positions >= n are
// silently ignored.
func FromUint(n int, v uint64) *BitSet {
	b := New(n)
	for i := 0; v != 0 && i < n; i, v = i+1, v>>1 {
		if v&1 != 0 {
			b.data[i>>3] |= 1 << (i & 7)
		}
	}
	return b
}

// Len returns the capacity of the set in bits.
func (b *BitSet) Len() int { return b.n }

// WordWidth returns the width, in bits, of the backing words selected for
// this capacity.
func (b *BitSet) WordWidth() int { return b.width }

// Words returns the number of backing words.
func (b *BitSet) Words() int {
	if b.n == 0 {
		return 0
	}
	return len(b.data) / (b.width / 8)
}

// SizeBytes returns the length of the backing buffer in bytes.
func (b *BitSet) SizeBytes() int { return len(b.data) }

// Bytes returns the backing buffer itself: little-endian words, trailing
// padding bits always zero. The slice aliases the BitSet; writes through it
// mutate the set directly. Callers that write bits at positions >= Len()
// violate the padding invariant and get undefined behavior from All, Equal
// and Hash.
func (b *BitSet) Bytes() []byte { return b.data }

// Clone returns an independent deep copy.
func (b *BitSet) Clone() *BitSet {
	out := &BitSet{n: b.n, width: b.width, data: make([]byte, len(b.data))}
	copy(out.data, b.data)
	return out
}

// Equal reports whether o has the same capacity and the same bits set.
// Sets of different capacities are never equal.
func (b *BitSet) Equal(o *BitSet) bool {
	return b.n == o.n && bytes.Equal(b.data, o.data)
}

// word returns backing word i zero-extended to uint64.
func (b *BitSet) word(i int) uint64 {
	switch b.width {
	case 8:
		return uint64(b.data[i])
	case 16:
		return uint64(binary.LittleEndian.Uint16(b.data[i*2:]))
	case 32:
		return uint64(binary.LittleEndian.Uint32(b.data[i*4:]))
	default:
		return binary.LittleEndian.Uint64(b.data[i*8:])
	}
}

// setWord stores the low WordWidth bits of v as backing word i.
func (b *BitSet) setWord(i int, v uint64) {
	switch b.width {
	case 8:
		b.data[i] = byte(v)
	case 16:
		binary.LittleEndian.PutUint16(b.data[i*2:], uint16(v))
	case 32:
		binary.LittleEndian.PutUint32(b.data[i*4:], uint32(v))
	default:
		binary.LittleEndian.PutUint64(b.data[i*8:], v)
	}
}

// fullMask returns the all-ones pattern of a backing word.
func (b *BitSet) fullMask() uint64 {
	return ^uint64(0) >> (64 - b.width)
}

// lastMask returns the mask of valid bits in the last backing word: the low
// n mod WordWidth bits, or the full word when the last word is fully used.
func (b *BitSet) lastMask() uint64 {
	if rem := b.n % b.width; rem != 0 {
		return 1<<rem - 1
	}
	return b.fullMask()
}

// maskTail re-establishes the padding invariant by clearing every bit at a
// position >= n in the last word.
func (b *BitSet) maskTail() {
	if words := b.Words(); words > 0 {
		b.setWord(words-1, b.word(words-1)&b.lastMask())
	}
}

// mustMatch panics unless o has the same capacity as b. Binary operations
// are defined only between equal-capacity operands; a mismatch is a
// programming error, not a runtime condition.
func (b *BitSet) mustMatch(o *BitSet) {
	if b.n != o.n {
		panic("compactbitset: capacity mismatch")
	}
}
