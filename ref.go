package compactbitset

// Ref is a borrowed handle to a single bit of a BitSet: a pointer into the
// backing buffer plus the bit's mask within that byte. It carries no bit
// state of its own. A Ref must not outlive the BitSet it came from, and it
// must not be held across goroutines that mutate the set.
//
// Ref is the unchecked fast path; the bounds-checked entry points are Test,
// Set, SetTo, Reset and Flip on BitSet.
type Ref struct {
	p    *byte
	mask byte
}

// At returns a Ref for bit i. No bounds check is performed beyond the raw
// slice access; an out-of-range i panics.
func (b *BitSet) At(i int) Ref {
	return Ref{p: &b.data[i>>3], mask: 1 << (i & 7)}
}

// Value returns the referenced bit.
func (r Ref) Value() bool { return *r.p&r.mask != 0 }

// Set assigns v to the referenced bit, leaving every other bit untouched.
func (r Ref) Set(v bool) {
	if v {
		*r.p |= r.mask
	} else {
		*r.p &^= r.mask
	}
}

// Assign copies the value of o into the bit referenced by r. It is a value
// copy of one bit; r keeps referring to its own position.
func (r Ref) Assign(o Ref) { r.Set(o.Value()) }

// Flip toggles the referenced bit in place.
func (r Ref) Flip() { *r.p ^= r.mask }

// Not returns the inverse of the referenced bit without mutating it.
func (r Ref) Not() bool { return !r.Value() }
