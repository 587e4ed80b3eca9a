package array

import "encoding/binary"
import "testing"
import "unsafe"

import "github.com/superjamie/lcl/malloc"

func TestArray2RoundTrip(t *testing.T) {
	gm := malloc.NewGomalloc()
	rows, cols := int64(5), int64(7)
	arr, err := NewArray2(rows, cols, 4, gm)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// distinct value per cell, written through Row
	for r := int64(0); r < rows; r++ {
		row := arr.Row(r)
		if int64(len(row)) != cols*4 {
			t.Fatalf("expected %v, got %v", cols*4, len(row))
		}
		for c := int64(0); c < cols; c++ {
			binary.LittleEndian.PutUint32(row[c*4:], uint32(r*100+c))
		}
	}
	// read back through At and Data, no aliasing
	for r := int64(0); r < rows; r++ {
		for c := int64(0); c < cols; c++ {
			if v := *(*uint32)(arr.At(r, c)); v != uint32(r*100+c) {
				t.Errorf("(%v,%v) expected %v, got %v", r, c, r*100+c, v)
			}
		}
	}
	data := arr.Data()
	for i := int64(0); i < rows*cols; i++ {
		r, c := i/cols, i%cols
		if v := binary.LittleEndian.Uint32(data[i*4:]); v != uint32(r*100+c) {
			t.Errorf("flat %v expected %v, got %v", i, r*100+c, v)
		}
	}
	arr.Release()
	if n := gm.Nblocks(); n != 0 {
		t.Errorf("expected 0 blocks, got %v", n)
	}
}

func TestArray2ZeroFill(t *testing.T) {
	for _, m := range mallocers() {
		arr, err := NewArray2(17, 13, 8, m)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		for i, b := range arr.Data() {
			if b != 0 {
				t.Fatalf("byte %v expected 0, got %v", i, b)
			}
		}
		arr.Release()
	}
}

func TestArray2Table(t *testing.T) {
	gm := malloc.NewGomalloc()
	rows, cols, tsize := int64(6), int64(9), int64(4)
	arr, err := NewArray2(rows, cols, tsize, gm)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	base := uintptr(arr.Pointer())
	dstart := base + uintptr(arr.lo.dataoff)
	dend := dstart + uintptr(arr.lo.datasize)
	for r := int64(0); r < rows; r++ {
		slot := *(*unsafe.Pointer)(unsafe.Add(arr.Pointer(), r*ptrsize))
		if p := uintptr(slot); p < dstart || p >= dend {
			t.Errorf("row %v pointer outside data region", r)
		}
		if x := dstart + uintptr(r*cols*tsize); uintptr(slot) != x {
			t.Errorf("row %v expected offset %v, got %v", r, x-base, uintptr(slot)-base)
		}
	}
	arr.Release()
}

func TestArray2Degenerate(t *testing.T) {
	gm := malloc.NewGomalloc()

	arr, err := NewArray2(0, 5, 4, gm)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if arr.Sizeof() != 0 {
		t.Errorf("expected 0, got %v", arr.Sizeof())
	} else if arr.Pointer() != nil {
		t.Errorf("expected nil handle")
	} else if arr.Data() != nil {
		t.Errorf("expected nil data")
	}
	arr.Release()

	arr, err = NewArray2(5, 0, 4, gm)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if x := 5 * ptrsize; arr.Sizeof() != x {
		t.Errorf("expected %v, got %v", x, arr.Sizeof())
	} else if arr.Row(4) != nil {
		t.Errorf("expected nil row")
	} else if arr.Data() != nil {
		t.Errorf("expected nil data")
	}
	arr.Release()

	// zero sized elements, a valid design choice
	arr, err = NewArray2(5, 7, 0, gm)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if arr.Row(0) != nil {
		t.Errorf("expected nil row")
	} else if arr.At(4, 6) != nil {
		t.Errorf("expected nil element")
	}
	arr.Release()

	if n := gm.Nblocks(); n != 0 {
		t.Errorf("expected 0 blocks, got %v", n)
	}
}

func TestArray2Release(t *testing.T) {
	gm := malloc.NewGomalloc()
	arr, err := NewArray2(4, 4, 8, gm)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if n := gm.Nblocks(); n != 1 {
		t.Fatalf("expected 1 block, got %v", n)
	}
	arr.Release()
	if n := gm.Nblocks(); n != 0 {
		t.Fatalf("expected 0 blocks, got %v", n)
	}

	// release again
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		arr.Release()
	}()
	// use after release
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		arr.Row(0)
	}()
}

func TestArray2Bounds(t *testing.T) {
	arr, err := NewArray2(4, 4, 8, malloc.NewGomalloc())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	defer arr.Release()

	for _, rc := range [][2]int64{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for %v", rc)
				}
			}()
			arr.At(rc[0], rc[1])
		}()
	}
}

func BenchmarkNewArray2(b *testing.B) {
	gm := malloc.NewGomalloc()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr, _ := NewArray2(64, 64, 8, gm)
		arr.Release()
	}
}
