package footprint

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/voxelpal"
	"github.com/hupe1980/voxelpal/codec"
	"github.com/hupe1980/voxelpal/testutil"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, diameter int, cells []uint16) *voxelpal.Compressor {
	t.Helper()
	c, err := voxelpal.New(diameter)
	require.NoError(t, err)
	require.NoError(t, c.Encode(cells))
	return c
}

func TestMeasure(t *testing.T) {
	cells := testutil.NewRNG(42).UniformGrid(16, 6)
	c := encode(t, 16, cells)

	r, err := Measure(context.Background(), c, cells)
	require.NoError(t, err)

	assert.Equal(t, 16, r.Diameter)
	assert.Equal(t, 4096, r.Cells)
	assert.Equal(t, 8192, r.RawBytes)
	assert.Equal(t, 6, r.PaletteSize)
	// 4096 cells * 3 bits, 21 per word.
	assert.Equal(t, 196*8+6*2, r.Palette.PackedBytes)
	assert.Positive(t, r.LZ4Bytes)
	assert.Positive(t, r.ZstdBytes)
	assert.LessOrEqual(t, r.ZstdBytes, r.RawBytes)
}

func TestMeasureUniform(t *testing.T) {
	cells := make([]uint16, 512)
	c := encode(t, 8, cells)

	r, err := Measure(context.Background(), c, cells)
	require.NoError(t, err)
	assert.Equal(t, voxelpal.StateUniform, r.Palette.State)
	assert.Equal(t, 2, r.Palette.PackedBytes)
	assert.Less(t, r.LZ4Bytes, r.RawBytes)
	assert.Less(t, r.ZstdBytes, r.RawBytes)
}

func TestMeasureErrors(t *testing.T) {
	c, err := voxelpal.New(2)
	require.NoError(t, err)

	_, err = Measure(context.Background(), c, make([]uint16, 8))
	require.ErrorIs(t, err, voxelpal.ErrNotEncoded)

	require.NoError(t, c.Encode([]uint16{0, 1, 0, 1, 0, 1, 0, 1}))
	_, err = Measure(context.Background(), c, make([]uint16, 7))
	require.ErrorIs(t, err, voxelpal.ErrIndexOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Measure(ctx, c, make([]uint16, 8))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompressorsRoundTrip(t *testing.T) {
	raw := rawBytes(testutil.NewRNG(7).ZipfGrid(16, 8, 1.5))

	block, err := compressLZ4(raw)
	require.NoError(t, err)
	out := make([]byte, len(raw))
	n, err := lz4.UncompressBlock(block, out)
	require.NoError(t, err)
	assert.Equal(t, raw, out[:n])

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	got, err := dec.DecodeAll(compressZstd(raw), nil)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestWriteText(t *testing.T) {
	cells := testutil.NewRNG(1).UniformGrid(4, 3)
	c := encode(t, 4, cells)

	r, err := Measure(context.Background(), c, cells)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "representation")
	assert.Contains(t, out, "palette (packed, 3 ids, 2 bits)")
	assert.Contains(t, out, "zstd")
}

func TestReportJSON(t *testing.T) {
	cells := testutil.NewRNG(1).UniformGrid(4, 3)
	c := encode(t, 4, cells)

	r, err := Measure(context.Background(), c, cells)
	require.NoError(t, err)

	data := codec.MustMarshal(codec.Default, r)
	var back Report
	require.NoError(t, codec.Unmarshal(codec.Default, data, &back))
	assert.Equal(t, r, back)
}
