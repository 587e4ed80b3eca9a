// Package lcl implement multi-dimensional arrays allocated as a
// single contiguous heap block, along with the host memory
// allocators backing them.
//
// api:
//
// Interface specification for host memory allocators, and error
// values shared by all packages.
//
// array:
//
// Two dimensional and three dimensional arrays laid out as one
// block: pointer tables up front, flat row-major element storage
// after, every table entry computed once at construction. Releasing
// the array releases the entire block.
//
// malloc:
//
// Host memory allocators supplying zeroed blocks to the array
// package. Includes a flat C heap allocator, a Go heap allocator
// with exact allocation tracking, and a slab arena for workloads
// that churn many small arrays.
package lcl
