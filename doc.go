// Package compactbitset provides a fixed-capacity bit set that picks the
// narrowest backing word it can.
//
// A standard []uint64 bit set burns a full 8-byte word on a 5-bit flag set.
// BitSet instead derives its word width from the capacity at construction:
// 8, 16 or 32 bits for small capacities, 64-bit words beyond that. The
// observable behavior matches a conventional fixed-size bitset; only the
// memory footprint differs.
//
// # Quick Start
//
//	b := compactbitset.New(11)
//	b.Set(0)
//	b.Set(10)
//	fmt.Println(b)          // "10000000001"
//	fmt.Println(b.Count())  // 2
//
//	v, _ := compactbitset.FromString(8, "00001101")
//	n, _ := v.Uint64()      // 176
//
// # Checked vs Unchecked Access
//
// BitSet exposes two method families, mirroring the index/accessor split of
// conventional bitsets:
//
//   - Test, Set, SetTo, Reset and Flip validate the position and return
//     *ErrOutOfRange on violation.
//   - Bit and At skip validation entirely. They are the fast path for
//     callers that already hold a proven-valid index; misuse panics like a
//     raw slice index.
//
// # Invariant
//
// Every bit at a position >= Len() inside the last backing word is zero at
// every observable point. All, Equal, Hash and the raw Bytes view rely on
// this; every mutating operation re-establishes it before returning.
//
// # Concurrency
//
// BitSet is a plain value with no internal locking. Concurrent reads of a
// shared instance are safe; concurrent mutation is not. Use Clone for
// independent copies.
package compactbitset
