package voxelpal

import (
	"testing"

	"github.com/hupe1980/voxelpal/testutil"
)

func BenchmarkEncode(b *testing.B) {
	cells := testutil.NewRNG(42).UniformGrid(64, 6)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		c, _ := New(64)
		if err := c.Encode(cells); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	c, _ := New(64)
	if err := c.Encode(testutil.NewRNG(42).UniformGrid(64, 6)); err != nil {
		b.Fatal(err)
	}
	buf := make([]uint16, 0, c.Volume())

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := c.AppendDecoded(buf[:0]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	c, _ := New(64)
	if err := c.Encode(testutil.NewRNG(42).ZipfGrid(64, 32, 1.5)); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var i uint8
	for b.Loop() {
		_, _ = c.Get(i&63, (i*7)&63, (i*13)&63)
		i++
	}
}

func BenchmarkSet(b *testing.B) {
	c, _ := New(64)
	if err := c.Encode(testutil.NewRNG(42).UniformGrid(64, 6)); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var i uint8
	for b.Loop() {
		_ = c.Set(i&63, (i*7)&63, (i*13)&63, uint16(i%6))
		i++
	}
}
