// Package malloc supplies host memory allocators for the array
// package, with a limited scope:
//
//   - Every allocator hands out zero-initialized blocks, freshly
//     carved and recycled blocks alike.
//   - Blocks are at least 8-byte aligned, so pointer tables can
//     live at the front of any block.
//   - Cmalloc and Gomalloc are flat allocators, one host allocation
//     per block, and are safe for concurrent use.
//   - Arena recycles fixed size slabs through freelist pools for
//     workloads that churn many small arrays, falling back to the
//     flat C heap for oversized blocks. Arena is not thread safe.
//   - Memory acquired from the C heap is invisible to the Go
//     garbage collector. Gomalloc pins its blocks in a registry
//     instead, which doubles as exact allocation tracking.
package malloc
