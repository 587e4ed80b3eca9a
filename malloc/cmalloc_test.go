package malloc

import "testing"
import "unsafe"

func TestCmalloc(t *testing.T) {
	cm := NewCmalloc()
	ptr := cm.Alloc(1024)
	if ptr == nil {
		t.Fatalf("unexpected allocation failure")
	}
	block := unsafe.Slice((*byte)(ptr), 1024)
	for i, b := range block {
		if b != 0 {
			t.Fatalf("byte %v expected 0, got %v", i, b)
		}
	}
	if n := cm.Nblocks(); n != 1 {
		t.Errorf("expected 1 block, got %v", n)
	}
	if _, _, alloc, _ := cm.Info(); alloc != 1024 {
		t.Errorf("expected 1024, got %v", alloc)
	}

	cm.Free(ptr)
	if n := cm.Nblocks(); n != 0 {
		t.Errorf("expected 0 blocks, got %v", n)
	}

	// panic cases
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		cm.Free(ptr)
	}()
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		cm.Alloc(0)
	}()
}

func TestCmallocRelease(t *testing.T) {
	cm := NewCmalloc()
	for i := 0; i < 10; i++ {
		if cm.Alloc(128) == nil {
			t.Fatalf("unexpected allocation failure")
		}
	}
	if n := cm.Nblocks(); n != 10 {
		t.Errorf("expected 10 blocks, got %v", n)
	}
	cm.Release()
	if n := cm.Nblocks(); n != 0 {
		t.Errorf("expected 0 blocks, got %v", n)
	}
}
