// Package bitkit provides the population-count and find-first-set
// primitives behind the bitset operations.
//
// Architecture:
//   - Hardware kernel: math/bits, which the compiler lowers to POPCNT /
//     TZCNT on amd64 and CNT / RBIT+CLZ on arm64
//   - Generic kernel: pure-Go SWAR popcount and De Bruijn bit scan
//   - Selection: CPU feature detection at init, COMPACTBITSET_BITOPS
//     env var to force a kernel
//
// Both kernels produce identical results for every input; selection only
// affects speed.
package bitkit
