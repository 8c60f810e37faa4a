package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformGrid(t *testing.T) {
	rng := NewRNG(4711)

	cells := rng.UniformGrid(8, 6)

	require.Len(t, cells, 512)
	seen := map[uint16]bool{}
	for _, c := range cells {
		assert.Less(t, c, uint16(6))
		seen[c] = true
	}
	// 512 draws over 6 values hit every value.
	assert.Len(t, seen, 6)
}

func TestUniformGridDeterministic(t *testing.T) {
	a := NewRNG(42).UniformGrid(4, 100)
	b := NewRNG(42).UniformGrid(4, 100)
	assert.Equal(t, a, b)

	rng := NewRNG(42)
	first := rng.UniformGrid(4, 100)
	rng.Reset()
	assert.Equal(t, first, rng.UniformGrid(4, 100))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestZipfGridIsSkewed(t *testing.T) {
	rng := NewRNG(4711)

	cells := rng.ZipfGrid(16, 16, 1.5)

	counts := make([]int, 16)
	for _, c := range cells {
		require.Less(t, c, uint16(16))
		counts[c]++
	}
	assert.Greater(t, counts[0], counts[15])
	assert.Greater(t, counts[0], len(cells)/4)
}

func TestZipf(t *testing.T) {
	rng := NewRNG(1)
	assert.Equal(t, 0, rng.Zipf(1, 1.0))
	for range 100 {
		v := rng.Zipf(10, 1.0)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestSparseGrid(t *testing.T) {
	cells := SparseGrid(4, 7,
		Cell{X: 1, Y: 1, Z: 1, ID: 1},
		Cell{X: 2, Y: 3, Z: 1, ID: 2},
	)

	require.Len(t, cells, 64)
	assert.Equal(t, uint16(1), cells[1+1*4+1*16])
	assert.Equal(t, uint16(2), cells[3+2*4+1*16])
	assert.Equal(t, uint16(7), cells[0])
}
