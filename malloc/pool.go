package malloc

//#include <stdlib.h>
import "C"

import "unsafe"

// mpool manages a run of `n` fixed size slabs carved out of one C
// heap block, recycled through a freelist of slab indexes.
type mpool struct {
	slab       int64
	n          int64
	base       unsafe.Pointer
	capacity   int64
	freelist   []int64
	nallocated int64
}

func newmpool(slab, n int64) *mpool {
	capacity := slab * n
	base := C.malloc(C.size_t(capacity))
	if base == nil {
		return nil
	}
	pool := &mpool{
		slab: slab, n: n,
		base:     base,
		capacity: capacity,
		freelist: make([]int64, n),
	}
	for i := int64(0); i < n; i++ { // hand out low addresses first
		pool.freelist[i] = n - 1 - i
	}
	return pool
}

// allocchunk hand out one zeroed slab, ok is false when the pool
// is exhausted.
func (pool *mpool) allocchunk() (ptr unsafe.Pointer, ok bool) {
	if len(pool.freelist) == 0 {
		return nil, false
	}
	nth := pool.freelist[len(pool.freelist)-1]
	pool.freelist = pool.freelist[:len(pool.freelist)-1]
	ptr = unsafe.Add(pool.base, nth*pool.slab)
	initblock(ptr, pool.slab)
	pool.nallocated += pool.slab
	return ptr, true
}

// contains report whether ptr was carved out of this pool.
func (pool *mpool) contains(ptr unsafe.Pointer) bool {
	off := int64(uintptr(ptr)) - int64(uintptr(pool.base))
	return off >= 0 && off < pool.capacity
}

func (pool *mpool) free(ptr unsafe.Pointer) {
	off := int64(uintptr(ptr)) - int64(uintptr(pool.base))
	if (off % pool.slab) != 0 {
		panicerr("unaligned pointer %p for slab %v", ptr, pool.slab)
	}
	pool.freelist = append(pool.freelist, off/pool.slab)
	pool.nallocated -= pool.slab
}

func (pool *mpool) release() {
	C.free(pool.base)
	pool.base, pool.freelist = nil, nil
	pool.nallocated = 0
}
