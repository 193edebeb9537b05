package compactbitset

// Uint64 converts bits [0, Len()) to an unsigned integer with bit 0 as the
// least significant digit. It returns *ErrOverflow when Len() > 64; the
// check runs before any extraction, never silently truncating.
func (b *BitSet) Uint64() (uint64, error) {
	if b.n > 64 {
		return 0, &ErrOverflow{Len: b.n, Width: 64}
	}
	return b.extract(64), nil
}

// Uint32 converts bits [0, Len()) to an unsigned integer with bit 0 as the
// least significant digit. It returns *ErrOverflow when Len() > 32.
func (b *BitSet) Uint32() (uint32, error) {
	if b.n > 32 {
		return 0, &ErrOverflow{Len: b.n, Width: 32}
	}
	return uint32(b.extract(32)), nil
}

// extract gathers the set bits into an integer by scanning for them rather
// than walking every position, so the backing word width never has to match
// the destination width. The overflow check has already run; the width
// bound is only an early-out.
func (b *BitSet) extract(width int) uint64 {
	var v uint64
	for i, ok := b.NextSet(0); ok && i < width; i, ok = b.NextSet(i + 1) {
		v |= 1 << i
	}
	return v
}
