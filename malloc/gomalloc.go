package malloc

import "sync"
import "unsafe"

// Gomalloc flat allocator over the Go heap. Every block is pinned
// in a registry until freed, which keeps the block reachable even
// when the only references to it are pointers stored inside the
// block itself, as the array package does with its row tables. The
// registry also gives tests an exact view of outstanding
// allocations. Safe for concurrent use.
type Gomalloc struct {
	mu         sync.Mutex
	blocks     map[unsafe.Pointer][]byte
	nallocated int64
}

// NewGomalloc create a Go heap mallocer.
func NewGomalloc() *Gomalloc {
	return &Gomalloc{blocks: make(map[unsafe.Pointer][]byte)}
}

// Alloc implement api.Mallocer{} interface.
func (gm *Gomalloc) Alloc(n int64) unsafe.Pointer {
	if n <= 0 {
		panicerr("Alloc size %v", n)
	}
	// the Go allocator aligns pointer-free objects to 8 bytes only
	// when their size is a multiple of 8, tiny blocks can land at
	// any byte offset otherwise. Pad so pointer tables can sit at
	// offset 0 of any block.
	if r := n % Alignment; r != 0 {
		n += Alignment - r
	}
	buf := make([]byte, n)
	ptr := unsafe.Pointer(&buf[0])
	gm.mu.Lock()
	gm.blocks[ptr] = buf
	gm.nallocated += n
	gm.mu.Unlock()
	return ptr
}

// Free implement api.Mallocer{} interface.
func (gm *Gomalloc) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		panicerr("Free nil pointer")
	}
	gm.mu.Lock()
	defer gm.mu.Unlock()
	buf, ok := gm.blocks[ptr]
	if !ok {
		panicerr("Free unknown pointer %p", ptr)
	}
	delete(gm.blocks, ptr)
	gm.nallocated -= int64(len(buf))
}

// Release implement api.Mallocer{} interface.
func (gm *Gomalloc) Release() {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.blocks, gm.nallocated = make(map[unsafe.Pointer][]byte), 0
}

// Info implement api.Mallocer{} interface. Capacity is whatever
// the system has free. A flat allocator acquires exactly what it
// hands out, so heap equals alloc by construction.
func (gm *Gomalloc) Info() (capacity, heap, alloc, overhead int64) {
	_, _, free := getsysmem()
	gm.mu.Lock()
	defer gm.mu.Unlock()
	overhead = int64(len(gm.blocks)) * 40
	return int64(free), gm.nallocated, gm.nallocated, overhead
}

// Nblocks return the number of outstanding blocks.
func (gm *Gomalloc) Nblocks() int64 {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return int64(len(gm.blocks))
}
