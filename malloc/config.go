package malloc

import s "github.com/bnclabs/gosettings"

// Alignment slab sizes should be multiples of Alignment, and every
// block served by this package is aligned to it.
const Alignment = int64(8)

// Maxarenasize maximum capacity of a memory arena. Can be used as
// default capacity for NewArena().
const Maxarenasize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Maxpools maximum number of slab sizes allowed in an arena.
const Maxpools = int64(512)

// Maxchunks maximum number of slabs allowed in a single pool.
const Maxchunks = int64(65536)

// Minchunks number of slabs a fresh pool starts with, at least.
const Minchunks = int64(8)

// Malloc configurable parameters and default settings.
//
// "minblock" (int64, default: <minblock>)
//		Smallest slab size served by the arena. Requests below
//		it are rounded up.
//
// "maxblock" (int64, default: <maxblock>)
//		Largest slab size served by the arena's pools.
//
// "fallback" (bool, default: true)
//		Serve blocks larger than "maxblock" directly from the
//		C heap, one allocation each, instead of failing the
//		request.
func Defaultsettings(minblock, maxblock int64) s.Settings {
	if minblock > maxblock {
		panicerr("minblock(%v) > maxblock(%v)", minblock, maxblock)
	}
	return s.Settings{
		"minblock": minblock,
		"maxblock": maxblock,
		"fallback": true,
	}
}
