package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FillIDs fills dst with IDs uniform in [0, n).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillIDs(dst []uint16, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = uint16(r.rand.Intn(n))
	}
}

// UniformGrid returns a flat grid of diameter³ IDs uniform in [0, n).
func (r *RNG) UniformGrid(diameter, n int) []uint16 {
	cells := make([]uint16, diameter*diameter*diameter)
	r.FillIDs(cells, n)
	return cells
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return zipfLocked(r.rand, n, harmonic(n, s), s)
}

// ZipfGrid returns a flat grid of diameter³ IDs drawn from a Zipf
// distribution over [0, n). ID 0 is the most frequent, as air is in terrain.
func (r *RNG) ZipfGrid(diameter, n int, s float64) []uint16 {
	cells := make([]uint16, diameter*diameter*diameter)
	hns := harmonic(n, s)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range cells {
		cells[i] = uint16(zipfLocked(r.rand, n, hns, s))
	}
	return cells
}

// harmonic computes the normalization constant sum(1/k^s) for k in [1, n].
func harmonic(n int, s float64) float64 {
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}
	return hns
}

// zipfLocked samples by inverse transform (caller must hold lock).
func zipfLocked(rnd *rand.Rand, n int, hns, s float64) int {
	if n <= 1 {
		return 0
	}

	u := rnd.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// Cell is one explicitly placed ID.
type Cell struct {
	X, Y, Z uint8
	ID      uint16
}

// SparseGrid returns a flat grid of diameter³ cells holding background
// everywhere except at the given cells. Cells use the y + x*D + z*D² layout.
func SparseGrid(diameter int, background uint16, cells ...Cell) []uint16 {
	out := make([]uint16, diameter*diameter*diameter)
	for i := range out {
		out[i] = background
	}
	for _, c := range cells {
		out[int(c.Y)+int(c.X)*diameter+int(c.Z)*diameter*diameter] = c.ID
	}
	return out
}
