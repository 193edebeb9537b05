package compactbitset

// And returns the bitwise intersection of b and o as a new BitSet.
// Both operands must have the same capacity; a mismatch panics.
func (b *BitSet) And(o *BitSet) *BitSet {
	out := b.Clone()
	out.InPlaceAnd(o)
	return out
}

// Or returns the bitwise union of b and o as a new BitSet.
// Both operands must have the same capacity; a mismatch panics.
func (b *BitSet) Or(o *BitSet) *BitSet {
	out := b.Clone()
	out.InPlaceOr(o)
	return out
}

// Xor returns the bitwise symmetric difference of b and o as a new BitSet.
// Both operands must have the same capacity; a mismatch panics.
func (b *BitSet) Xor(o *BitSet) *BitSet {
	out := b.Clone()
	out.InPlaceXor(o)
	return out
}

// Not returns the per-bit complement of b as a new BitSet.
func (b *BitSet) Not() *BitSet {
	out := b.Clone()
	out.FlipAll()
	return out
}

// InPlaceAnd intersects o into b. Capacities must match.
func (b *BitSet) InPlaceAnd(o *BitSet) {
	b.mustMatch(o)
	for i := range b.data {
		b.data[i] &= o.data[i]
	}
}

// InPlaceOr unions o into b. Capacities must match.
// Both operands honor the padding invariant, so the result does too.
func (b *BitSet) InPlaceOr(o *BitSet) {
	b.mustMatch(o)
	for i := range b.data {
		b.data[i] |= o.data[i]
	}
}

// InPlaceXor folds the symmetric difference with o into b.
// Capacities must match.
func (b *BitSet) InPlaceXor(o *BitSet) {
	b.mustMatch(o)
	for i := range b.data {
		b.data[i] ^= o.data[i]
	}
}

// Lsh returns b shifted left by s as a new BitSet: bit i of the result is
// bit i-s of b, vacated low positions are zero. Shifting by s >= Len()
// saturates to the all-zero set.
func (b *BitSet) Lsh(s uint) *BitSet {
	out := New(b.n)
	if b.n == 0 || s >= uint(b.n) {
		return out
	}
	ws, bs := int(s)/b.width, int(s)%b.width
	words := b.Words()
	for i := words - 1; i >= ws; i-- {
		v := b.word(i-ws) << bs
		if bs > 0 && i-ws-1 >= 0 {
			v |= b.word(i-ws-1) >> (b.width - bs)
		}
		out.setWord(i, v&b.fullMask())
	}
	out.maskTail()
	return out
}

// Rsh returns b shifted right by s as a new BitSet: bit i of the result is
// bit i+s of b, vacated high positions are zero. Shifting by s >= Len()
// saturates to the all-zero set.
func (b *BitSet) Rsh(s uint) *BitSet {
	out := New(b.n)
	if b.n == 0 || s >= uint(b.n) {
		return out
	}
	ws, bs := int(s)/b.width, int(s)%b.width
	words := b.Words()
	for i := 0; i+ws < words; i++ {
		v := b.word(i+ws) >> bs
		if bs > 0 && i+ws+1 < words {
			v |= b.word(i+ws+1) << (b.width - bs) & b.fullMask()
		}
		out.setWord(i, v)
	}
	out.maskTail()
	return out
}
