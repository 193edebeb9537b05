package compactbitset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap exports the positions of all set bits into a Roaring bitmap, the
// interchange form used by sparse/filtering layers. The BitSet itself stays
// packed; this is a conversion, not a change of representation.
func (b *BitSet) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		rb.Add(uint32(i))
	}
	return rb
}

// FromBitmap returns a BitSet of capacity n holding the members of rb.
// Members at positions >= n are silently ignored, mirroring the integer
// constructor's treatment of out-of-range bits.
func FromBitmap(n int, rb *roaring.Bitmap) *BitSet {
	b := New(n)
	it := rb.Iterator()
	for it.HasNext() {
		if i := int(it.Next()); i < n {
			b.data[i>>3] |= 1 << (i & 7)
		}
	}
	return b
}
