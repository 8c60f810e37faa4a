// Package footprint compares the palette-packed size of a grid with the
// naive layout and with general-purpose block compressors.
//
// The LZ4 and zstd figures are computed over the raw little-endian grid,
// two bytes per cell, and serve as a reference point only. voxelpal never
// stores grids with them.
package footprint

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"github.com/hupe1980/voxelpal"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"
)

// Report is the footprint of one grid under each representation.
type Report struct {
	Diameter    int            `json:"diameter"`
	Cells       int            `json:"cells"`
	RawBytes    int            `json:"raw_bytes"`
	PaletteSize int            `json:"palette_size"`
	Palette     voxelpal.Stats `json:"palette"`
	LZ4Bytes    int            `json:"lz4_bytes"`
	ZstdBytes   int            `json:"zstd_bytes"`
}

// Ratio returns RawBytes/size, or 0 for an empty size.
func (r Report) Ratio(size int) float64 {
	if size == 0 {
		return 0
	}
	return float64(r.RawBytes) / float64(size)
}

// Measure builds a Report for cells and the Compressor that encoded them.
// The LZ4 and zstd passes run concurrently.
func Measure(ctx context.Context, c *voxelpal.Compressor, cells []uint16) (Report, error) {
	if !c.State().Encoded() {
		return Report{}, voxelpal.ErrNotEncoded
	}
	if len(cells) != c.Volume() {
		return Report{}, &voxelpal.ErrGridSizeMismatch{Expected: c.Volume(), Actual: len(cells)}
	}

	raw := rawBytes(cells)
	r := Report{
		Diameter:    c.Diameter(),
		Cells:       len(cells),
		RawBytes:    len(raw),
		PaletteSize: c.PaletteSize(),
		Palette:     c.Stats(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := compressLZ4(raw)
		if err != nil {
			return fmt.Errorf("lz4: %w", err)
		}
		r.LZ4Bytes = len(out)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.ZstdBytes = len(compressZstd(raw))
		return nil
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return r, nil
}

// WriteText renders r as an aligned table.
func WriteText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "representation\tbytes\tratio\t\n")
	fmt.Fprintf(tw, "raw\t%d\t%.2f\t\n", r.RawBytes, 1.0)
	fmt.Fprintf(tw, "palette (%s, %d ids, %d bits)\t%d\t%.2f\t\n",
		r.Palette.State, r.PaletteSize, r.Palette.BitWidth, r.Palette.PackedBytes, r.Ratio(r.Palette.PackedBytes))
	fmt.Fprintf(tw, "lz4\t%d\t%.2f\t\n", r.LZ4Bytes, r.Ratio(r.LZ4Bytes))
	fmt.Fprintf(tw, "zstd\t%d\t%.2f\t\n", r.ZstdBytes, r.Ratio(r.ZstdBytes))
	return tw.Flush()
}

func rawBytes(cells []uint16) []byte {
	raw := make([]byte, 2*len(cells))
	for i, v := range cells {
		binary.LittleEndian.PutUint16(raw[2*i:], v)
	}
	return raw
}

// compressLZ4 returns the LZ4 block for data, or data itself when LZ4
// cannot shrink it.
func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return data, nil // Incompressible
	}
	return compressed[:n], nil
}

var zstdEncoderPool sync.Pool

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func compressZstd(data []byte) []byte {
	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil)
}
