package api

import "errors"

// ErrorSizeOverflow the requested shape and element size cannot be
// represented in the host's size type. Detected before any
// allocation is attempted.
var ErrorSizeOverflow = errors.New("lcl.sizeoverflow")

// ErrorOutofMemory the host allocator could not supply the
// requested block.
var ErrorOutofMemory = errors.New("lcl.outofmemory")
