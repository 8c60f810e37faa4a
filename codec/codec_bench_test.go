package codec

import (
	"io"
	"testing"

	"github.com/hupe1980/voxelpal"
	"github.com/hupe1980/voxelpal/testutil"
)

func benchStats(b *testing.B) voxelpal.Stats {
	b.Helper()
	c, err := voxelpal.New(16)
	if err != nil {
		b.Fatal(err)
	}
	if err := c.Encode(testutil.NewRNG(1).UniformGrid(16, 6)); err != nil {
		b.Fatal(err)
	}
	return c.Stats()
}

func BenchmarkEncode_Stats(b *testing.B) {
	stats := benchStats(b)

	for _, cd := range []Codec{JSON{}, GoJSON{}} {
		b.Run(cd.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(MustMarshal(cd, stats))))
			for b.Loop() {
				if err := cd.Encode(io.Discard, stats); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUnmarshal_Stats(b *testing.B) {
	data := MustMarshal(JSON{}, benchStats(b))

	for _, cd := range []Codec{JSON{}, GoJSON{}} {
		b.Run(cd.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			var v voxelpal.Stats
			for b.Loop() {
				if err := Unmarshal(cd, data, &v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
