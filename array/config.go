package array

import s "github.com/bnclabs/gosettings"

import "github.com/superjamie/lcl/api"
import "github.com/superjamie/lcl/malloc"

// Array configurable parameters and default settings.
//
// "allocator" (string, default: "cgo")
//		Host allocator used when constructors receive a nil
//		mallocer, can be "cgo" for the C heap or "go" for the
//		Go heap.
func Defaultsettings() s.Settings {
	return s.Settings{
		"allocator": "cgo",
	}
}

var cmallocer = malloc.NewCmalloc()
var gmallocer = malloc.NewGomalloc()

// Defaultmallocer pick the host mallocer named by the "allocator"
// setting. Each name maps to a single shared instance, safe for
// concurrent use.
func Defaultmallocer(setts s.Settings) api.Mallocer {
	switch name := setts.String("allocator"); name {
	case "cgo":
		return cmallocer
	case "go":
		return gmallocer
	default:
		panicerr("unknown allocator %q", name)
	}
	return nil
}
