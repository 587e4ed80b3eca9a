package malloc

import "fmt"

import "github.com/cloudfoundry/gosigar"

// Slabsizes generate the slab sizes served by an arena's pools,
// doubling from minblock up to and including maxblock. Both should
// be positive multiples of Alignment.
func Slabsizes(minblock, maxblock int64) []int64 {
	if minblock <= 0 || maxblock < minblock {
		panicerr("invalid slab range %v-%v", minblock, maxblock)
	} else if (minblock % Alignment) != 0 {
		panicerr("minblock %v is not multiple of %v", minblock, Alignment)
	} else if (maxblock % Alignment) != 0 {
		panicerr("maxblock %v is not multiple of %v", maxblock, Alignment)
	}
	sizes := make([]int64, 0, 64)
	for size := minblock; size < maxblock; size <<= 1 {
		sizes = append(sizes, size)
	}
	return append(sizes, maxblock)
}

// Suitableslab pick the smallest slab that can hold `size` bytes.
// `slabs` should be sorted, `size` should not exceed the largest
// slab.
func Suitableslab(slabs []int64, size int64) int64 {
	for len(slabs) > 2 {
		pivot := len(slabs) / 2
		if slabs[pivot] < size {
			slabs = slabs[pivot+1:]
		} else {
			slabs = slabs[:pivot+1]
		}
	}
	if size <= slabs[0] {
		return slabs[0]
	}
	return slabs[len(slabs)-1]
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
