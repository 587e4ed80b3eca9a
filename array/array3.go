package array

import "unsafe"

import "github.com/superjamie/lcl/api"

// Array3 is a three dimensional array of fixed size elements living
// in a single heap block. The block starts with a table of `layers`
// pointers, entry `l` holding the address of layer l's slice of a
// second table of `layers*rows` pointers, whose entry `l*rows+r`
// holds the address of the first byte of row (l,r) inside the flat
// data region at the end of the block. Elements are laid out
// row-major within a layer, layer-major overall.
type Array3 struct {
	lo    layout3
	block unsafe.Pointer
	m     api.Mallocer
}

// NewArray3 allocate a zeroed `layers` x `rows` x `cols` array of
// `tsize` byte elements as one block from mallocer `m`, nil `m`
// meaning the default mallocer. Zero extents and zero `tsize` are
// legal and yield a valid empty array. Fails with
// api.ErrorSizeOverflow if the block size cannot be computed in
// int64 arithmetic, and with api.ErrorOutofMemory if the mallocer
// cannot supply the block. On failure nothing is allocated.
func NewArray3(layers, rows, cols, tsize int64, m api.Mallocer) (*Array3, error) {
	lo, err := newlayout3(layers, rows, cols, tsize)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = Defaultmallocer(Defaultsettings())
	}
	arr := &Array3{lo: lo, m: m}
	if lo.total == 0 { // layers == 0, no block needed
		return arr, nil
	}
	if arr.block = m.Alloc(lo.total); arr.block == nil {
		return nil, api.ErrorOutofMemory
	}
	if lo.rowtabsize > 0 { // rows > 0, wire the layer table
		rowtab := unsafe.Add(arr.block, lo.rowoff)
		for l := int64(0); l < layers; l++ {
			slot := (*unsafe.Pointer)(unsafe.Add(arr.block, l*ptrsize))
			*slot = unsafe.Add(rowtab, l*lo.rowtabsize)
		}
	}
	if lo.rowsize > 0 { // rows carry bytes, wire the row table
		data := unsafe.Add(arr.block, lo.dataoff)
		for l := int64(0); l < layers; l++ {
			for r := int64(0); r < rows; r++ {
				off := lo.rowoff + (l*rows+r)*ptrsize
				slot := (*unsafe.Pointer)(unsafe.Add(arr.block, off))
				*slot = unsafe.Add(data, (l*rows+r)*lo.rowsize)
			}
		}
	}
	fmsg := "array3 %vx%vx%v tsize %v block %v bytes\n"
	debugf(fmsg, layers, rows, cols, tsize, lo.total)
	return arr, nil
}

// Shape return the array's extents.
func (arr *Array3) Shape() (layers, rows, cols int64) {
	return arr.lo.layers, arr.lo.rows, arr.lo.cols
}

// Elemsize return the byte size of one element.
func (arr *Array3) Elemsize() int64 {
	return arr.lo.tsize
}

// Sizeof return the byte size of the whole block, pointer tables
// included.
func (arr *Array3) Sizeof() int64 {
	return arr.lo.total
}

// Row return the bytes of row `r` in layer `l`, `cols*tsize` long,
// resolved through both pointer tables. Returns nil when rows carry
// no bytes. Panics if an index is out of range or the array is
// released.
func (arr *Array3) Row(l, r int64) []byte {
	arr.rowcheck(l, r)
	if arr.lo.rowsize == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(arr.rowptr(l, r)), arr.lo.rowsize)
}

// At return the address of element (l,r,c), resolved through both
// pointer tables. Returns nil when elements are zero sized. Panics
// if an index is out of range or the array is released.
func (arr *Array3) At(l, r, c int64) unsafe.Pointer {
	arr.rowcheck(l, r)
	if c < 0 || c >= arr.lo.cols {
		panicerr("column %v out of range %v", c, arr.lo.cols)
	}
	if arr.lo.rowsize == 0 {
		return nil
	}
	return unsafe.Add(arr.rowptr(l, r), c*arr.lo.tsize)
}

// Data return the flat data region, `layers*rows*cols*tsize` bytes,
// nil when empty. Panics if the array is released.
func (arr *Array3) Data() []byte {
	arr.releasedcheck()
	if arr.lo.datasize == 0 {
		return nil
	}
	data := unsafe.Add(arr.block, arr.lo.dataoff)
	return unsafe.Slice((*byte)(data), arr.lo.datasize)
}

// Pointer return the raw handle, the address of the layer table.
// Off-heap blocks can hand this to C as a `T ***`. Nil for
// degenerate arrays. Panics if the array is released.
func (arr *Array3) Pointer() unsafe.Pointer {
	arr.releasedcheck()
	return arr.block
}

// Release the block back to the mallocer, tables and data alike.
// Every slice and address obtained from the accessors is invalid
// hereafter. Releasing twice panics.
func (arr *Array3) Release() {
	arr.releasedcheck()
	if arr.block != nil {
		arr.m.Free(arr.block)
	}
	arr.block, arr.m = nil, nil
	fmsg := "array3 %vx%vx%v released\n"
	debugf(fmsg, arr.lo.layers, arr.lo.rows, arr.lo.cols)
}

// resolve (l,r) the way nested subscripting would: layer table
// entry first, then the row table entry it points to.
func (arr *Array3) rowptr(l, r int64) unsafe.Pointer {
	rowtab := *(*unsafe.Pointer)(unsafe.Add(arr.block, l*ptrsize))
	return *(*unsafe.Pointer)(unsafe.Add(rowtab, r*ptrsize))
}

func (arr *Array3) releasedcheck() {
	if arr.m == nil {
		panicerr("array released")
	}
}

func (arr *Array3) rowcheck(l, r int64) {
	arr.releasedcheck()
	if l < 0 || l >= arr.lo.layers {
		panicerr("layer %v out of range %v", l, arr.lo.layers)
	} else if r < 0 || r >= arr.lo.rows {
		panicerr("row %v out of range %v", r, arr.lo.rows)
	}
}
