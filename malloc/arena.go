package malloc

//#include <stdlib.h>
import "C"

import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Arena recycles fixed size slabs through freelist pools. Blocks up
// to "maxblock" bytes are rounded to the nearest slab and served
// from a pool of that slab size; larger blocks, typically the data
// heavy arrays, are served straight from the C heap when "fallback"
// is enabled. Arenas can be created with following parameters:
//
//	capacity : maximum bytes handed out by this arena.
//	minblock : smallest slab size, requests below it are rounded up.
//	maxblock : largest slab size served from pools.
//	fallback : serve blocks larger than maxblock from the C heap.
//
// Not thread safe.
type Arena struct {
	slabs    []int64
	mpools   map[int64][]*mpool
	oversize map[unsafe.Pointer]int64

	// accounting
	nallocated int64
	heap       int64

	// configuration
	capacity int64
	minblock int64
	maxblock int64
	fallback bool
}

// NewArena create a new memory arena of `capacity` bytes.
func NewArena(capacity int64, setts s.Settings) *Arena {
	arena := &Arena{
		mpools:   make(map[int64][]*mpool),
		oversize: make(map[unsafe.Pointer]int64),
		capacity: capacity,
		minblock: setts.Int64("minblock"),
		maxblock: setts.Int64("maxblock"),
		fallback: setts.Bool("fallback"),
	}
	if capacity <= 0 || capacity > Maxarenasize {
		panicerr("capacity %v should be within (0, %v]", capacity, Maxarenasize)
	}
	arena.slabs = Slabsizes(arena.minblock, arena.maxblock)
	if int64(len(arena.slabs)) > Maxpools {
		panicerr("number of pools %v exceeds %v", len(arena.slabs), Maxpools)
	}
	if _, _, free := getsysmem(); uint64(capacity) > free {
		fmsg := "arena capacity %v exceeds free system memory %v\n"
		warnf(fmsg, humanize.Bytes(uint64(capacity)), humanize.Bytes(free))
	}
	fmsg := "arena started with capacity %v, slabs %v-%v\n"
	infof(fmsg, humanize.Bytes(uint64(capacity)), arena.minblock, arena.maxblock)
	return arena
}

//---- operations

// Alloc implement api.Mallocer{} interface. Returned blocks are
// zeroed, slabs recycled through Free included. Returns nil when
// the arena capacity, or the C heap, is exhausted.
func (arena *Arena) Alloc(n int64) unsafe.Pointer {
	if arena.mpools == nil {
		panicerr("arena released")
	} else if n <= 0 {
		panicerr("Alloc size %v", n)
	}
	if n > arena.maxblock {
		if arena.fallback == false {
			return nil
		}
		return arena.allocoversize(n)
	}
	slab := Suitableslab(arena.slabs, n)
	if arena.nallocated+slab > arena.capacity {
		return nil
	}
	for _, pool := range arena.mpools[slab] {
		if ptr, ok := pool.allocchunk(); ok {
			arena.nallocated += slab
			return ptr
		}
	}
	// pools for this slab are exhausted, carve a new one.
	pool := newmpool(slab, arena.numchunks(slab))
	if pool == nil {
		return nil
	}
	arena.mpools[slab] = append([]*mpool{pool}, arena.mpools[slab]...)
	arena.heap += pool.capacity
	ptr, _ := pool.allocchunk()
	arena.nallocated += slab
	return ptr
}

// Free implement api.Mallocer{} interface.
func (arena *Arena) Free(ptr unsafe.Pointer) {
	if arena.mpools == nil {
		panicerr("arena released")
	} else if ptr == nil {
		panicerr("Free nil pointer")
	}
	if n, ok := arena.oversize[ptr]; ok {
		delete(arena.oversize, ptr)
		arena.nallocated -= n
		arena.heap -= n
		C.free(ptr)
		return
	}
	for _, pools := range arena.mpools {
		for _, pool := range pools {
			if pool.contains(ptr) {
				pool.free(ptr)
				arena.nallocated -= pool.slab
				return
			}
		}
	}
	panicerr("Free unknown pointer %p", ptr)
}

// Release implement api.Mallocer{} interface.
func (arena *Arena) Release() {
	if arena.mpools == nil {
		panicerr("arena released")
	}
	for _, pools := range arena.mpools {
		for _, pool := range pools {
			pool.release()
		}
	}
	for ptr := range arena.oversize {
		C.free(ptr)
	}
	fmsg := "arena released, heap %v alloc %v\n"
	infof(fmsg,
		humanize.Bytes(uint64(arena.heap)),
		humanize.Bytes(uint64(arena.nallocated)))
	arena.mpools, arena.oversize = nil, nil
	arena.nallocated, arena.heap = 0, 0
}

//---- statistics and maintenance

// Info implement api.Mallocer{} interface.
func (arena *Arena) Info() (capacity, heap, alloc, overhead int64) {
	overhead = int64(unsafe.Sizeof(*arena))
	for _, pools := range arena.mpools {
		for _, pool := range pools {
			poolsz := int64(unsafe.Sizeof(*pool))
			overhead += poolsz + int64(cap(pool.freelist))*8
		}
	}
	return arena.capacity, arena.heap, arena.nallocated, overhead
}

// Utilization return, for each slab size with live pools, the
// percentage of pool memory handed out to the application.
func (arena *Arena) Utilization() ([]int64, []float64) {
	slabs := make([]int64, 0, len(arena.slabs))
	uzs := make([]float64, 0, len(arena.slabs))
	for _, slab := range arena.slabs {
		capacity, allocated := int64(0), int64(0)
		for _, pool := range arena.mpools[slab] {
			capacity += pool.capacity
			allocated += pool.nallocated
		}
		if capacity > 0 {
			slabs = append(slabs, slab)
			uzs = append(uzs, (float64(allocated)/float64(capacity))*100)
		}
	}
	return slabs, uzs
}

// Log arena accounting, humanized.
func (arena *Arena) Log() {
	capacity, heap, alloc, overhead := arena.Info()
	fmsg := "arena capacity %v heap %v alloc %v overhead %v\n"
	infof(fmsg,
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)))
	slabs, uzs := arena.Utilization()
	for i, slab := range slabs {
		infof("  slab %v utilization %.2f%%\n", slab, uzs[i])
	}
}

//---- local functions

// numchunks decide how many slabs a fresh pool should carry,
// spreading the arena capacity across the slab sizes.
func (arena *Arena) numchunks(slab int64) int64 {
	numchunks := (arena.capacity / int64(len(arena.slabs))) / slab
	if numchunks > Maxchunks {
		numchunks = Maxchunks
	} else if numchunks < Minchunks {
		numchunks = Minchunks
	}
	return numchunks
}

func (arena *Arena) allocoversize(n int64) unsafe.Pointer {
	if arena.nallocated+n > arena.capacity {
		return nil
	}
	ptr := C.calloc(C.size_t(1), C.size_t(n))
	if ptr == nil {
		return nil
	}
	arena.oversize[ptr] = n
	arena.nallocated += n
	arena.heap += n
	debugf("arena oversize block %v\n", humanize.Bytes(uint64(n)))
	return ptr
}
