// Package api define types and interfaces common to the array
// allocators and the host memory allocators implemented by this
// library.
package api

import "unsafe"

// Mallocer interface for host memory management. Implementations
// are not required to be thread safe.
type Mallocer interface {
	// Alloc a zero-initialized block of `n` bytes, `n` > 0.
	// Returns nil if the host cannot satisfy the request, in
	// which case no memory is retained.
	Alloc(n int64) unsafe.Pointer

	// Free a block obtained from Alloc on this same mallocer.
	// Freeing a foreign or already freed pointer panics.
	Free(ptr unsafe.Pointer)

	// Release the mallocer along with every outstanding block.
	Release()

	// Info of memory accounting for this mallocer. `capacity` is
	// the maximum it will serve, `heap` the bytes acquired from
	// the host, `alloc` the bytes handed out to the application
	// and `overhead` the bookkeeping cost.
	Info() (capacity, heap, alloc, overhead int64)
}
