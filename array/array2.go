package array

import "unsafe"

import "github.com/superjamie/lcl/api"

// Array2 is a two dimensional array of fixed size elements living
// in a single heap block. The block starts with a table of `rows`
// pointers, entry `r` holding the address of the first byte of row
// `r` inside the flat data region that follows the table. Element
// (r,c) occupies tsize bytes at column offset c*tsize within its
// row.
type Array2 struct {
	lo    layout2
	block unsafe.Pointer
	m     api.Mallocer
}

// NewArray2 allocate a zeroed `rows` x `cols` array of `tsize` byte
// elements as one block from mallocer `m`, nil `m` meaning the
// default mallocer. Zero extents and zero `tsize` are legal and
// yield a valid empty array. Fails with api.ErrorSizeOverflow if
// the block size cannot be computed in int64 arithmetic, and with
// api.ErrorOutofMemory if the mallocer cannot supply the block. On
// failure nothing is allocated.
func NewArray2(rows, cols, tsize int64, m api.Mallocer) (*Array2, error) {
	lo, err := newlayout2(rows, cols, tsize)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = Defaultmallocer(Defaultsettings())
	}
	arr := &Array2{lo: lo, m: m}
	if lo.total == 0 { // rows == 0, no block needed
		return arr, nil
	}
	if arr.block = m.Alloc(lo.total); arr.block == nil {
		return nil, api.ErrorOutofMemory
	}
	if lo.rowsize > 0 {
		data := unsafe.Add(arr.block, lo.dataoff)
		for r := int64(0); r < rows; r++ {
			slot := (*unsafe.Pointer)(unsafe.Add(arr.block, r*ptrsize))
			*slot = unsafe.Add(data, r*lo.rowsize)
		}
	}
	debugf("array2 %vx%v tsize %v block %v bytes\n", rows, cols, tsize, lo.total)
	return arr, nil
}

// Shape return the array's extents.
func (arr *Array2) Shape() (rows, cols int64) {
	return arr.lo.rows, arr.lo.cols
}

// Elemsize return the byte size of one element.
func (arr *Array2) Elemsize() int64 {
	return arr.lo.tsize
}

// Sizeof return the byte size of the whole block, pointer table
// included.
func (arr *Array2) Sizeof() int64 {
	return arr.lo.total
}

// Row return the bytes of row `r`, `cols*tsize` long, resolved
// through the pointer table. Returns nil when rows carry no bytes.
// Panics if `r` is out of range or the array is released.
func (arr *Array2) Row(r int64) []byte {
	arr.rowcheck(r)
	if arr.lo.rowsize == 0 {
		return nil
	}
	ptr := *(*unsafe.Pointer)(unsafe.Add(arr.block, r*ptrsize))
	return unsafe.Slice((*byte)(ptr), arr.lo.rowsize)
}

// At return the address of element (r,c), resolved through the
// pointer table. Returns nil when elements are zero sized. Panics
// if an index is out of range or the array is released.
func (arr *Array2) At(r, c int64) unsafe.Pointer {
	arr.boundscheck(r, c)
	if arr.lo.rowsize == 0 {
		return nil
	}
	ptr := *(*unsafe.Pointer)(unsafe.Add(arr.block, r*ptrsize))
	return unsafe.Add(ptr, c*arr.lo.tsize)
}

// Data return the flat data region, `rows*cols*tsize` bytes in
// row-major order, nil when empty. Panics if the array is released.
func (arr *Array2) Data() []byte {
	arr.releasedcheck()
	if arr.lo.datasize == 0 {
		return nil
	}
	data := unsafe.Add(arr.block, arr.lo.dataoff)
	return unsafe.Slice((*byte)(data), arr.lo.datasize)
}

// Pointer return the raw handle, the address of the pointer table.
// Off-heap blocks can hand this to C as a `T **`. Nil for
// degenerate arrays. Panics if the array is released.
func (arr *Array2) Pointer() unsafe.Pointer {
	arr.releasedcheck()
	return arr.block
}

// Release the block back to the mallocer, tables and data alike.
// Every slice and address obtained from the accessors is invalid
// hereafter. Releasing twice panics.
func (arr *Array2) Release() {
	arr.releasedcheck()
	if arr.block != nil {
		arr.m.Free(arr.block)
	}
	arr.block, arr.m = nil, nil
	debugf("array2 %vx%v released\n", arr.lo.rows, arr.lo.cols)
}

func (arr *Array2) releasedcheck() {
	if arr.m == nil {
		panicerr("array released")
	}
}

func (arr *Array2) rowcheck(r int64) {
	arr.releasedcheck()
	if r < 0 || r >= arr.lo.rows {
		panicerr("row %v out of range %v", r, arr.lo.rows)
	}
}

func (arr *Array2) boundscheck(r, c int64) {
	arr.rowcheck(r)
	if c < 0 || c >= arr.lo.cols {
		panicerr("column %v out of range %v", c, arr.lo.cols)
	}
}
