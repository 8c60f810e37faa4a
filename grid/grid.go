// Package grid provides the uncompressed flat grid that voxelpal encodes
// from and decodes into.
//
// Cells are addressed as y + x*D + z*D², so y varies fastest. This
// ordering must match voxelpal.Compressor.Index.
package grid

import (
	"fmt"
	"slices"
)

// MaxDiameter is the largest side length addressable with uint8 coordinates.
const MaxDiameter = 256

// Source supplies random integers in [0, n). *rand.Rand and *testutil.RNG satisfy it.
type Source interface {
	Intn(n int) int
}

// Grid is a dense cube of block IDs.
type Grid struct {
	diameter int
	area     int
	cells    []uint16
}

// New returns a zero-filled grid.
func New(diameter int) (*Grid, error) {
	if diameter < 1 || diameter > MaxDiameter {
		return nil, fmt.Errorf("grid: invalid diameter %d", diameter)
	}
	return &Grid{
		diameter: diameter,
		area:     diameter * diameter,
		cells:    make([]uint16, diameter*diameter*diameter),
	}, nil
}

// FromCells wraps cells without copying. len(cells) must be diameter³.
func FromCells(diameter int, cells []uint16) (*Grid, error) {
	if diameter < 1 || diameter > MaxDiameter {
		return nil, fmt.Errorf("grid: invalid diameter %d", diameter)
	}
	if want := diameter * diameter * diameter; len(cells) != want {
		return nil, fmt.Errorf("grid: got %d cells, want %d", len(cells), want)
	}
	return &Grid{
		diameter: diameter,
		area:     diameter * diameter,
		cells:    cells,
	}, nil
}

// Index returns the linear index of (x, y, z) in a grid of the given diameter.
func Index(diameter int, x, y, z uint8) int {
	return int(y) + int(x)*diameter + int(z)*diameter*diameter
}

// Diameter returns the side length.
func (g *Grid) Diameter() int { return g.diameter }

// Volume returns the number of cells.
func (g *Grid) Volume() int { return len(g.cells) }

// Index returns the linear index of (x, y, z).
func (g *Grid) Index(x, y, z uint8) int {
	return int(y) + int(x)*g.diameter + int(z)*g.area
}

// At returns the ID at (x, y, z). It panics if a coordinate is out of range.
func (g *Grid) At(x, y, z uint8) uint16 {
	return g.cells[g.mustIndex(x, y, z)]
}

// Set stores id at (x, y, z). It panics if a coordinate is out of range.
func (g *Grid) Set(x, y, z uint8, id uint16) {
	g.cells[g.mustIndex(x, y, z)] = id
}

// Cells returns the backing slice. Writes through it are visible to the grid.
func (g *Grid) Cells() []uint16 { return g.cells }

// Fill sets every cell to id.
func (g *Grid) Fill(id uint16) {
	for i := range g.cells {
		g.cells[i] = id
	}
}

// Clear zeroes the grid.
func (g *Grid) Clear() { clear(g.cells) }

// Randomize fills the grid with IDs uniform in [0, n).
func (g *Grid) Randomize(src Source, n int) {
	for i := range g.cells {
		g.cells[i] = uint16(src.Intn(n))
	}
}

// Distinct returns the distinct IDs in ascending order.
func (g *Grid) Distinct() []uint16 {
	ids := slices.Clone(g.cells)
	slices.Sort(ids)
	return slices.Compact(ids)
}

// Equal reports whether both grids have the same diameter and cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.diameter == other.diameter && slices.Equal(g.cells, other.cells)
}

func (g *Grid) mustIndex(x, y, z uint8) int {
	d := g.diameter
	if int(x) >= d || int(y) >= d || int(z) >= d {
		panic(fmt.Sprintf("grid: coordinate (%d, %d, %d) out of range for diameter %d", x, y, z, d))
	}
	return g.Index(x, y, z)
}
