package compactbitset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash folds the backing bytes into a single value by XOR-combining
// successive 64-bit little-endian chunks, zero-padding the final partial
// chunk. Equal sets (same capacity, same bits) always hash equal: the
// padding invariant makes the backing bytes a canonical encoding.
//
// The fold is cheap but weak; prefer Sum64 when keying adversarial input.
func (b *BitSet) Hash() uint64 {
	var h uint64
	data := b.data
	for len(data) >= 8 {
		h ^= binary.LittleEndian.Uint64(data)
		data = data[8:]
	}
	if len(data) > 0 {
		var tail [8]byte
		copy(tail[:], data)
		h ^= binary.LittleEndian.Uint64(tail[:])
	}
	return h
}

// Sum64 returns an xxHash digest of the backing bytes: a well-distributed
// 64-bit key for hash-based containers. Like Hash, equal sets produce equal
// digests.
func (b *BitSet) Sum64() uint64 {
	return xxhash.Sum64(b.data)
}
