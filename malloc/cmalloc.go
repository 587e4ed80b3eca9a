package malloc

//#include <stdlib.h>
import "C"

import "sync"
import "unsafe"

// Cmalloc flat allocator over the C heap, every Alloc maps to one
// calloc and every Free to the matching free. Blocks live outside
// the Go heap, the garbage collector never scans or moves them, so
// pointers stored inside a block stay valid until it is freed.
// Safe for concurrent use.
type Cmalloc struct {
	mu         sync.Mutex
	sizes      map[unsafe.Pointer]int64
	nallocated int64
}

// NewCmalloc create a C heap mallocer.
func NewCmalloc() *Cmalloc {
	return &Cmalloc{sizes: make(map[unsafe.Pointer]int64)}
}

// Alloc implement api.Mallocer{} interface.
func (cm *Cmalloc) Alloc(n int64) unsafe.Pointer {
	if n <= 0 {
		panicerr("Alloc size %v", n)
	}
	ptr := C.calloc(C.size_t(1), C.size_t(n))
	if ptr == nil {
		return nil
	}
	cm.mu.Lock()
	cm.sizes[ptr] = n
	cm.nallocated += n
	cm.mu.Unlock()
	return ptr
}

// Free implement api.Mallocer{} interface.
func (cm *Cmalloc) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		panicerr("Free nil pointer")
	}
	cm.mu.Lock()
	size, ok := cm.sizes[ptr]
	if !ok {
		cm.mu.Unlock()
		panicerr("Free unknown pointer %p", ptr)
	}
	delete(cm.sizes, ptr)
	cm.nallocated -= size
	cm.mu.Unlock()
	C.free(ptr)
}

// Release implement api.Mallocer{} interface.
func (cm *Cmalloc) Release() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	for ptr := range cm.sizes {
		C.free(ptr)
	}
	cm.sizes, cm.nallocated = make(map[unsafe.Pointer]int64), 0
}

// Info implement api.Mallocer{} interface. Capacity is whatever the
// system has free. A flat allocator acquires exactly what it hands
// out, so heap equals alloc by construction.
func (cm *Cmalloc) Info() (capacity, heap, alloc, overhead int64) {
	_, _, free := getsysmem()
	cm.mu.Lock()
	defer cm.mu.Unlock()
	overhead = int64(len(cm.sizes)) * 16
	return int64(free), cm.nallocated, cm.nallocated, overhead
}

// Nblocks return the number of outstanding blocks.
func (cm *Cmalloc) Nblocks() int64 {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return int64(len(cm.sizes))
}
