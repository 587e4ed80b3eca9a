// Package array implement two dimensional and three dimensional
// arrays allocated as one contiguous zeroed block, with a limited
// scope:
//
//   - Types and Functions exported by this package are not thread
//     safe, serializing concurrent writes into a single array is the
//     caller's responsibility. Distinct arrays can be built and used
//     concurrently.
//   - Element size is opaque, the package never interprets element
//     contents beyond the initial zero-fill.
//   - Arrays are fixed shape. There is no resizing, a new shape is a
//     new allocation.
//   - Rows are rectangular, ragged shapes are not supported.
//
// The block begins with pointer tables and ends with the flat
// element storage. A two dimensional array carries one table of
// `rows` entries, each pointing to the first byte of its row. A
// three dimensional array carries two tables, `layers` entries
// pointing into a second table of `layers*rows` entries, which in
// turn point into the element storage, laid out row-major within
// layer, layer-major overall. Every entry is computed once during
// construction and never rewritten.
//
// Blocks come from an api.Mallocer. Releasing the array returns the
// single block to its mallocer, invalidating the tables and every
// element address derived from them.
package array
