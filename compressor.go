package voxelpal

import (
	"errors"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/voxelpal/internal/bitpack"
	"github.com/hupe1980/voxelpal/internal/palette"
)

// MaxDiameter is the largest cube side addressable with uint8 coordinates.
const MaxDiameter = 256

// Compressor stores one cubic grid of block IDs in palette-compressed form.
//
// A Compressor is not safe for concurrent use. Callers that share one
// instance across goroutines must serialize access themselves.
type Compressor struct {
	diameter int
	area     int
	volume   int

	state   State
	uniform uint16

	store  *palette.Store
	layout bitpack.Layout
	words  []uint64

	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty Compressor for a grid with the given side length.
func New(diameter int, optFns ...Option) (*Compressor, error) {
	if diameter < 1 || diameter > MaxDiameter {
		return nil, &ErrInvalidDiameter{Diameter: diameter}
	}

	o := applyOptions(optFns)

	return &Compressor{
		diameter: diameter,
		area:     diameter * diameter,
		volume:   diameter * diameter * diameter,
		metrics:  o.metricsCollector,
		logger:   o.logger.WithDiameter(diameter),
	}, nil
}

// Encode compresses cells, a flat grid of Volume() IDs laid out as
// Index(x, y, z). It succeeds at most once per Compressor; on failure the
// Compressor stays empty.
func (c *Compressor) Encode(cells []uint16) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordEncode(len(cells), c.PaletteSize(), time.Since(start), err)
		c.logger.LogEncode(len(cells), c.Stats(), err)
	}()

	if c.state != StateEmpty {
		return ErrAlreadyEncoded
	}
	if len(cells) == 0 {
		return ErrEmptyInput
	}
	if len(cells) != c.volume {
		return &ErrGridSizeMismatch{Expected: c.volume, Actual: len(cells)}
	}

	distinct := roaring.New()
	for _, id := range cells {
		distinct.Add(uint32(id))
	}

	if distinct.GetCardinality() == 1 {
		c.uniform = uint16(distinct.Minimum())
		c.state = StateUniform
		return nil
	}

	ids := make([]uint16, 0, distinct.GetCardinality())
	it := distinct.Iterator()
	for it.HasNext() {
		ids = append(ids, uint16(it.Next()))
	}

	store, err := palette.Build(ids)
	if err != nil {
		return translateError(err)
	}
	layout := bitpack.LayoutForPalette(store.Size())

	indices := make([]uint32, len(cells))
	for i, id := range cells {
		idx, err := store.IndexOf(id)
		if err != nil {
			return translateError(err)
		}
		indices[i] = idx
	}

	words, err := layout.Pack(indices)
	if err != nil {
		return translateError(err)
	}

	c.store = store
	c.layout = layout
	c.words = words
	c.state = StatePacked
	return nil
}

// Decode returns a new flat grid holding exactly Volume() cells.
func (c *Compressor) Decode() ([]uint16, error) {
	return c.AppendDecoded(make([]uint16, 0, c.volume))
}

// AppendDecoded appends exactly Volume() cells to dst in Index order and
// returns the extended slice.
func (c *Compressor) AppendDecoded(dst []uint16) (out []uint16, err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordDecode(c.volume, time.Since(start), err)
		c.logger.LogDecode(c.volume, err)
	}()

	switch c.state {
	case StateUniform:
		dst = slices.Grow(dst, c.volume)
		for range c.volume {
			dst = append(dst, c.uniform)
		}
		return dst, nil
	case StatePacked:
		indices, err := c.layout.Unpack(make([]uint32, 0, c.volume), c.words, c.volume)
		if err != nil {
			return dst, translateError(err)
		}
		dst = slices.Grow(dst, c.volume)
		for _, idx := range indices {
			id, err := c.store.IDAt(idx)
			if err != nil {
				return dst, translateError(err)
			}
			dst = append(dst, id)
		}
		return dst, nil
	default:
		return dst, ErrNotEncoded
	}
}

// Get returns the ID stored at (x, y, z).
//
// A slot past the end of the packed stream reads as 0; this cannot happen
// for a grid encoded by this package.
func (c *Compressor) Get(x, y, z uint8) (uint16, error) {
	if err := c.checkCoords(x, y, z); err != nil {
		return 0, err
	}

	switch c.state {
	case StateUniform:
		return c.uniform, nil
	case StatePacked:
		idx, err := c.layout.ReadAt(c.words, c.Index(x, y, z))
		if errors.Is(err, bitpack.ErrSlotOutOfRange) {
			return 0, nil
		}
		if err != nil {
			return 0, translateError(err)
		}
		id, err := c.store.IDAt(idx)
		if err != nil {
			return 0, translateError(err)
		}
		return id, nil
	default:
		return 0, ErrNotEncoded
	}
}

// Set overwrites the ID stored at (x, y, z) in place.
//
// value must already be part of the palette; otherwise Set returns
// ErrUnknownValue and the packed words are unchanged. A uniform grid only
// accepts its own value. Set never changes the bit width or word count.
func (c *Compressor) Set(x, y, z uint8, value uint16) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordSet(time.Since(start), err)
		c.logger.LogSet(x, y, z, value, err)
	}()

	if err := c.checkCoords(x, y, z); err != nil {
		return err
	}

	switch c.state {
	case StateUniform:
		if value != c.uniform {
			return translateError(&palette.ErrUnknownID{ID: value})
		}
		return nil
	case StatePacked:
		idx, err := c.store.IndexOf(value)
		if err != nil {
			return translateError(err)
		}
		return translateError(c.layout.WriteAt(c.words, c.Index(x, y, z), idx))
	default:
		return ErrNotEncoded
	}
}

// Index returns the linear cell index of (x, y, z): y + x*D + z*D².
// y varies fastest.
func (c *Compressor) Index(x, y, z uint8) int {
	return int(y) + int(x)*c.diameter + int(z)*c.area
}

func (c *Compressor) checkCoords(x, y, z uint8) error {
	d := c.diameter
	if int(x) >= d || int(y) >= d || int(z) >= d {
		return &ErrCoordinateOutOfRange{X: x, Y: y, Z: z, Diameter: d}
	}
	return nil
}

// State returns the structural state.
func (c *Compressor) State() State { return c.state }

// Diameter returns the cube side length.
func (c *Compressor) Diameter() int { return c.diameter }

// Volume returns the number of cells, Diameter()³.
func (c *Compressor) Volume() int { return c.volume }

// UniformValue returns the single ID of a uniform grid.
func (c *Compressor) UniformValue() (uint16, bool) {
	return c.uniform, c.state == StateUniform
}

// PaletteSize returns the number of palette entries. It is 0 unless the grid is packed.
func (c *Compressor) PaletteSize() int {
	if c.store == nil {
		return 0
	}
	return c.store.Size()
}

// Palette returns a copy of the palette in index order (ascending IDs).
func (c *Compressor) Palette() []uint16 {
	if c.store == nil {
		return nil
	}
	return c.store.IDs()
}

// BitWidth returns the width of one packed index. It is 0 unless the grid is packed.
func (c *Compressor) BitWidth() int {
	if c.state != StatePacked {
		return 0
	}
	return c.layout.BitWidth()
}

// SlotsPerWord returns the number of indices per packed word. It is 0 unless the grid is packed.
func (c *Compressor) SlotsPerWord() int {
	if c.state != StatePacked {
		return 0
	}
	return c.layout.SlotsPerWord()
}

// Words returns a copy of the packed words.
func (c *Compressor) Words() []uint64 {
	return slices.Clone(c.words)
}

// WordCount returns the number of packed words.
func (c *Compressor) WordCount() int {
	return len(c.words)
}
