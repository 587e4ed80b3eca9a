package array

import "unsafe"

import "github.com/superjamie/lcl/api"

// width of one pointer-table entry.
const ptrsize = int64(unsafe.Sizeof(unsafe.Pointer(nil)))

const maxint64 = int64(^uint64(0) >> 1)

// layout2 describe the two regions of a 2D block: a table of `rows`
// pointer entries at offset zero, and `rows*cols` elements of
// `tsize` bytes immediately after.
type layout2 struct {
	rows, cols, tsize int64
	rowsize           int64 // cols * tsize
	dataoff           int64 // rows * ptrsize
	datasize          int64 // rows * rowsize
	total             int64
}

func newlayout2(rows, cols, tsize int64) (lo layout2, err error) {
	lo = layout2{rows: rows, cols: cols, tsize: tsize}
	if lo.dataoff, err = mulchk(rows, ptrsize); err != nil {
		return lo, err
	} else if lo.rowsize, err = mulchk(cols, tsize); err != nil {
		return lo, err
	} else if lo.datasize, err = mulchk(rows, lo.rowsize); err != nil {
		return lo, err
	} else if lo.total, err = addchk(lo.dataoff, lo.datasize); err != nil {
		return lo, err
	}
	return lo, nil
}

// layout3 describe the three regions of a 3D block: a table of
// `layers` pointer entries, a table of `layers*rows` pointer
// entries, and `layers*rows*cols` elements of `tsize` bytes, all
// adjacent in that order.
type layout3 struct {
	layers, rows, cols, tsize int64
	rowsize                   int64 // cols * tsize
	rowtabsize                int64 // rows * ptrsize, per layer
	rowoff                    int64 // layers * ptrsize
	dataoff                   int64 // rowoff + layers*rowtabsize
	datasize                  int64 // layers * rows * rowsize
	total                     int64
}

func newlayout3(layers, rows, cols, tsize int64) (lo layout3, err error) {
	lo = layout3{layers: layers, rows: rows, cols: cols, tsize: tsize}
	if lo.rowoff, err = mulchk(layers, ptrsize); err != nil {
		return lo, err
	} else if lo.rowtabsize, err = mulchk(rows, ptrsize); err != nil {
		return lo, err
	} else if lo.rowsize, err = mulchk(cols, tsize); err != nil {
		return lo, err
	}
	nrows, err := mulchk(layers, rows)
	if err != nil {
		return lo, err
	}
	rowtabs, err := mulchk(layers, lo.rowtabsize)
	if err != nil {
		return lo, err
	}
	if lo.dataoff, err = addchk(lo.rowoff, rowtabs); err != nil {
		return lo, err
	} else if lo.datasize, err = mulchk(nrows, lo.rowsize); err != nil {
		return lo, err
	} else if lo.total, err = addchk(lo.dataoff, lo.datasize); err != nil {
		return lo, err
	}
	return lo, nil
}

// Sizeof2 compute the byte cost of a 2D array without allocating
// it: the pointer table, the element storage and the whole block.
func Sizeof2(rows, cols, tsize int64) (table, data, total int64, err error) {
	lo, err := newlayout2(rows, cols, tsize)
	if err != nil {
		return 0, 0, 0, err
	}
	return lo.dataoff, lo.datasize, lo.total, nil
}

// Sizeof3 compute the byte cost of a 3D array without allocating
// it: both pointer tables, the element storage and the whole block.
func Sizeof3(layers, rows, cols, tsize int64) (tables, data, total int64, err error) {
	lo, err := newlayout3(layers, rows, cols, tsize)
	if err != nil {
		return 0, 0, 0, err
	}
	return lo.dataoff, lo.datasize, lo.total, nil
}

// mulchk checked multiplication for byte counts. Negative operands
// are unrepresentable sizes, same as overflowing ones.
func mulchk(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, api.ErrorSizeOverflow
	} else if a == 0 || b == 0 {
		return 0, nil
	} else if a > maxint64/b {
		return 0, api.ErrorSizeOverflow
	}
	return a * b, nil
}

func addchk(a, b int64) (int64, error) {
	if a > maxint64-b {
		return 0, api.ErrorSizeOverflow
	}
	return a + b, nil
}
