//go:build debug
// +build debug

package malloc

import "unsafe"

// initblock poison the chunk so that stale reads stand out while
// debugging. Note that the zeroed-block guarantee does not hold
// under this build tag.
func initblock(block unsafe.Pointer, size int64) {
	dst := unsafe.Slice((*byte)(block), size)
	for i := range dst {
		dst[i] = 0xff
	}
}
