// Package testutil provides testing utilities for voxelpal.
//
// This package is intended for use in tests, benchmarks and the demo
// command only. It provides a seeded RNG and generators for flat grids of
// block IDs.
//
// # Random Grids
//
//	rng := testutil.NewRNG(seed)
//	cells := rng.UniformGrid(64, 6)     // IDs uniform in [0, 6)
//	cells = rng.ZipfGrid(64, 16, 1.5)   // skewed, like real terrain
//	cells = testutil.SparseGrid(4, 0, testutil.Cell{X: 1, Y: 1, Z: 1, ID: 1})
package testutil
