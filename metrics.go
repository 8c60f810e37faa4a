package voxelpal

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see the
// metrics/prometheus package for a Prometheus-backed implementation.
//
// Get is intentionally not instrumented: it is a hot path of a few shifts.
type MetricsCollector interface {
	// RecordEncode is called after each encode attempt.
	// cells is the input length, paletteSize is 0 unless the grid was packed.
	RecordEncode(cells, paletteSize int, duration time.Duration, err error)

	// RecordDecode is called after each decode.
	RecordDecode(cells int, duration time.Duration, err error)

	// RecordSet is called after each single-cell write.
	RecordSet(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordSet(time.Duration, error)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeCells      atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeCells      atomic.Int64
	SetCount         atomic.Int64
	SetErrors        atomic.Int64
	SetTotalNanos    atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(cells, paletteSize int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeCells.Add(int64(cells))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(cells int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeCells.Add(int64(cells))
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(duration time.Duration, err error) {
	b.SetCount.Add(1)
	b.SetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SetErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EncodeCount:    b.EncodeCount.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		EncodeCells:    b.EncodeCells.Load(),
		EncodeAvgNanos: avgNanos(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:    b.DecodeCount.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
		DecodeCells:    b.DecodeCells.Load(),
		SetCount:       b.SetCount.Load(),
		SetErrors:      b.SetErrors.Load(),
		SetAvgNanos:    avgNanos(b.SetTotalNanos.Load(), b.SetCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount    int64
	EncodeErrors   int64
	EncodeCells    int64
	EncodeAvgNanos int64
	DecodeCount    int64
	DecodeErrors   int64
	DecodeCells    int64
	SetCount       int64
	SetErrors      int64
	SetAvgNanos    int64
}
