// Package voxelpal provides palette compression for cubic grids of block IDs.
//
// Most voxel grids use a handful of distinct IDs out of the 65536 a uint16
// can hold. voxelpal builds a per-grid palette of the IDs actually present
// and stores every cell as a fixed-width index into it, packed into 64-bit
// words. Reads and writes of single cells work directly on the packed form.
//
// # Quick Start
//
//	c, _ := voxelpal.New(64)
//	if err := c.Encode(cells); err != nil { // len(cells) == 64*64*64
//	    return err
//	}
//	id, _ := c.Get(1, 2, 3)
//	_ = c.Set(1, 2, 3, id)     // id must already be in the palette
//	cells, _ = c.Decode()
//
// # Layout
//
// The flat grid is addressed as y + x*D + z*D², so y varies fastest. Each
// index takes ceil(log2(paletteSize)) bits (at least one). A word holds
// floor(64/bits) indices starting at the least-significant bit; indices
// never straddle two words.
//
// A grid with a single distinct ID is stored as that ID alone, with no
// palette and no words.
//
// # Lifecycle
//
// A Compressor is created empty, encoded exactly once, and then accepts
// any number of Get, Set and Decode calls. The palette and bit width are
// fixed at encode time: Set rejects IDs that were not present with
// ErrUnknownValue instead of widening the stream. To add a new ID, decode,
// modify and encode into a fresh Compressor.
//
// # Concurrency
//
// A Compressor is not safe for concurrent use.
package voxelpal
