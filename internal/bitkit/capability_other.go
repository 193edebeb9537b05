//go:build !amd64 && !arm64

package bitkit

func init() {
	initKernel()
}
