package array

import "sync"
import "testing"

import "github.com/superjamie/lcl/malloc"

// distinct arrays, one shared thread safe mallocer.
func TestConcurrentArrays(t *testing.T) {
	gm := malloc.NewGomalloc()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				arr, err := NewArray2(16, 16, 4, gm)
				if err != nil {
					t.Errorf("unexpected error %v", err)
					return
				}
				*(*uint32)(arr.At(15, 15)) = uint32(g)
				if v := *(*uint32)(arr.At(15, 15)); v != uint32(g) {
					t.Errorf("expected %v, got %v", g, v)
				}
				arr.Release()
			}
		}(g)
	}
	wg.Wait()
	if n := gm.Nblocks(); n != 0 {
		t.Errorf("expected 0 blocks, got %v", n)
	}
}
