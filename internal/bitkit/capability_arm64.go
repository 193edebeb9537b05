//go:build arm64

package bitkit

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD carries the vector CNT instruction math/bits compiles to.
	hasPopcount = cpu.ARM64.HasASIMD
	initKernel()
}
