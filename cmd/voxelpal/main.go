// Command voxelpal walks through palette compression of a random grid:
// compress, read back pinned cells, update one in place, decode, and
// report the footprint against LZ4 and zstd.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/voxelpal"
	"github.com/hupe1980/voxelpal/codec"
	"github.com/hupe1980/voxelpal/footprint"
	"github.com/hupe1980/voxelpal/grid"
	"github.com/hupe1980/voxelpal/testutil"
)

type config struct {
	diameter int
	ids      int
	seed     int64
	format   string
	logLevel slog.Level
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{logLevel: slog.LevelWarn}

	fs := flag.NewFlagSet("voxelpal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.diameter, "diameter", 64, "Cube side length (1-256)")
	fs.IntVar(&cfg.ids, "ids", 6, "Number of distinct random IDs")
	fs.Int64Var(&cfg.seed, "seed", 42, "RNG seed")
	fs.StringVar(&cfg.format, "format", "text", "Report format: text, json or go-json")
	fs.TextVar(&cfg.logLevel, "log-level", slog.LevelWarn, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.ids < 1 || cfg.ids > 1<<16 {
		return config{}, fmt.Errorf("ids must be in [1, 65536], got %d", cfg.ids)
	}
	if cfg.format != "text" {
		if _, ok := codec.ByName(cfg.format); !ok {
			return config{}, fmt.Errorf("unknown format %q", cfg.format)
		}
	}
	return cfg, nil
}

// pin scales a coordinate of the 64³ walkthrough onto a grid of diameter d.
func pin(v, d int) uint8 {
	return uint8(v * (d - 1) / 63)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := voxelpal.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel}))

	g, err := grid.New(cfg.diameter)
	if err != nil {
		return err
	}
	g.Randomize(testutil.NewRNG(cfg.seed), cfg.ids)

	d := cfg.diameter
	pins := []testutil.Cell{
		{X: pin(1, d), Y: pin(1, d), Z: pin(1, d), ID: 1},
		{X: pin(23, d), Y: pin(43, d), Z: pin(12, d), ID: 2},
		{X: pin(63, d), Y: pin(63, d), Z: pin(63, d), ID: 3},
	}
	for _, p := range pins {
		g.Set(p.X, p.Y, p.Z, p.ID)
	}

	fmt.Fprintln(stdout, "Values in the uncompressed grid:")
	for _, p := range pins {
		fmt.Fprintf(stdout, "  (%3d, %3d, %3d) = %d\n", p.X, p.Y, p.Z, g.At(p.X, p.Y, p.Z))
	}

	metrics := &voxelpal.BasicMetricsCollector{}
	c, err := voxelpal.New(d, voxelpal.WithLogger(logger), voxelpal.WithMetricsCollector(metrics))
	if err != nil {
		return err
	}
	if err := c.Encode(g.Cells()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	fmt.Fprintln(stdout, "Values in the compressed grid:")
	for _, p := range pins {
		v, err := c.Get(p.X, p.Y, p.Z)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  (%3d, %3d, %3d) = %d\n", p.X, p.Y, p.Z, v)
	}

	// Only IDs already in the palette can be written in place.
	target := pins[1]
	if err := c.Set(target.X, target.Y, target.Z, 4); err != nil {
		fmt.Fprintf(stdout, "Set (%d, %d, %d) = 4 rejected: %v\n", target.X, target.Y, target.Z, err)
	} else {
		v, _ := c.Get(target.X, target.Y, target.Z)
		fmt.Fprintf(stdout, "Modified (%3d, %3d, %3d) = %d\n", target.X, target.Y, target.Z, v)
	}

	original := append([]uint16(nil), g.Cells()...)
	g.Clear()
	if _, err := c.AppendDecoded(g.Cells()[:0]); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Fprintln(stdout, "Values in the decoded grid:")
	for _, p := range pins {
		fmt.Fprintf(stdout, "  (%3d, %3d, %3d) = %d\n", p.X, p.Y, p.Z, g.At(p.X, p.Y, p.Z))
	}

	report, err := footprint.Measure(context.Background(), c, original)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	if cfg.format == "text" {
		if err := footprint.WriteText(stdout, report); err != nil {
			return err
		}
	} else {
		cd, _ := codec.ByName(cfg.format)
		if err := cd.Encode(stdout, report); err != nil {
			return err
		}
	}

	ms := metrics.GetStats()
	logger.Info("done",
		"encodes", ms.EncodeCount,
		"sets", ms.SetCount,
		"set_errors", ms.SetErrors,
		"decodes", ms.DecodeCount,
	)
	return nil
}
