// Package palette holds the bijection between raw block IDs and dense
// palette indices for one compressed grid.
//
// Indices are assigned in ascending ID order, so index 0 is always the
// smallest ID present. A Store is immutable once built.
package palette
