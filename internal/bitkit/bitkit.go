package bitkit

import (
	"math/bits"
	"os"
	"strings"
)

// Kernel identifies a bit-primitive implementation.
type Kernel uint8

const (
	// Generic is the portable pure-Go implementation.
	Generic Kernel = iota
	// Hardware routes through math/bits, which lowers to single
	// instructions on CPUs that have them.
	Hardware
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "hardware":
		return Hardware, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once from the platform init functions.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	activeKernel Kernel
	hasOverride  bool

	// hasPopcount is set by platform-specific init when the CPU exposes a
	// native population-count instruction.
	hasPopcount bool
)

// initKernel is called from platform-specific init functions after CPU
// features are detected.
func initKernel() {
	if override := os.Getenv("COMPACTBITSET_BITOPS"); override != "" {
		if k, ok := ParseKernel(override); ok {
			if k == Generic || hasPopcount {
				hasOverride = true
				activeKernel = k
				return
			}
			// Unavailable override - fall through to auto-detection.
		}
	}

	if hasPopcount {
		activeKernel = Hardware
	} else {
		activeKernel = Generic
	}
}

// ActiveKernel returns the currently selected kernel.
func ActiveKernel() Kernel { return activeKernel }

// IsOverridden returns true if COMPACTBITSET_BITOPS was honored.
func IsOverridden() bool { return hasOverride }

// OnesCount64 returns the number of set bits in x.
func OnesCount64(x uint64) int {
	if activeKernel == Hardware {
		return bits.OnesCount64(x)
	}
	return onesCount64Generic(x)
}

// TrailingZeros64 returns the number of trailing zero bits in x;
// it returns 64 when x is 0.
func TrailingZeros64(x uint64) int {
	if activeKernel == Hardware {
		return bits.TrailingZeros64(x)
	}
	return trailingZeros64Generic(x)
}

const (
	m1 = 0x5555555555555555
	m2 = 0x3333333333333333
	m4 = 0x0f0f0f0f0f0f0f0f
	h8 = 0x0101010101010101
)

// onesCount64Generic is the classic SWAR popcount: pairwise sums, nibble
// sums, then a multiply to gather the byte counts into the top byte.
func onesCount64Generic(x uint64) int {
	x -= (x >> 1) & m1
	x = x&m2 + (x>>2)&m2
	x = (x + x>>4) & m4
	return int((x * h8) >> 56)
}

const deBruijn64 = 0x03f79d71b4ca8b09

var deBruijn64tab = [64]byte{
	0, 1, 56, 2, 57, 49, 28, 3, 61, 58, 42, 50, 38, 29, 17, 4,
	62, 47, 59, 36, 45, 43, 51, 22, 53, 39, 33, 30, 24, 18, 12, 5,
	63, 55, 48, 27, 60, 41, 37, 16, 46, 35, 44, 21, 52, 32, 23, 11,
	54, 26, 40, 15, 34, 20, 31, 10, 25, 14, 19, 9, 13, 8, 7, 6,
}

// trailingZeros64Generic isolates the lowest set bit and looks up its
// position through a De Bruijn multiply.
func trailingZeros64Generic(x uint64) int {
	if x == 0 {
		return 64
	}
	return int(deBruijn64tab[x&-x*deBruijn64>>58])
}
