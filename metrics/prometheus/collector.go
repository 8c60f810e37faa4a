// Package prometheus exports voxelpal operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	col, _ := vpprom.NewCollector(reg)
//	c, _ := voxelpal.New(64, voxelpal.WithMetricsCollector(col))
package prometheus

import (
	"time"

	"github.com/hupe1980/voxelpal"
	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "voxelpal"

// Collector implements voxelpal.MetricsCollector.
type Collector struct {
	opLatency   *prom.HistogramVec
	paletteSize prom.Histogram
	cells       *prom.CounterVec
}

var _ voxelpal.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prom.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of compressor operations",
			Buckets:   prom.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"op", "status"}),
		paletteSize: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "palette_size",
			Help:      "Palette size of packed grids at encode time",
			Buckets:   prom.ExponentialBuckets(2, 2, 12),
		}),
		cells: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cells_total",
			Help:      "Cells processed by successful encodes and decodes",
		}, []string{"op"}),
	}

	for _, m := range []prom.Collector{c.opLatency, c.paletteSize, c.cells} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordEncode implements voxelpal.MetricsCollector.
func (c *Collector) RecordEncode(cells, paletteSize int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("encode", status(err)).Observe(d.Seconds())
	if err != nil {
		return
	}
	c.cells.WithLabelValues("encode").Add(float64(cells))
	if paletteSize > 0 {
		c.paletteSize.Observe(float64(paletteSize))
	}
}

// RecordDecode implements voxelpal.MetricsCollector.
func (c *Collector) RecordDecode(cells int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("decode", status(err)).Observe(d.Seconds())
	if err == nil {
		c.cells.WithLabelValues("decode").Add(float64(cells))
	}
}

// RecordSet implements voxelpal.MetricsCollector.
func (c *Collector) RecordSet(d time.Duration, err error) {
	c.opLatency.WithLabelValues("set", status(err)).Observe(d.Seconds())
}
