// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/quickly/array"
	"github.com/katalvlaran/quickly/matrix"
	"github.com/lmittmann/tint"
	"golang.org/x/sys/cpu"
)

var (
	errNoOps      = errors.New("quicklybench: no kernels selected")
	errUnknownOp  = errors.New("quicklybench: unknown kernel")
	errBadSetting = errors.New("quicklybench: invalid setting")
)

// config is the parsed command line.
type config struct {
	Size   int
	Iter   int
	Window int
	Seed   int64
	Ops    []string
	Level  slog.Level
}

// kernel runs one operation over the prepared inputs.
type kernel struct {
	name string
	run  func(in *inputs) error
}

// inputs are built once per run and shared read-only by every kernel.
type inputs struct {
	x, y   []float64
	gappy  []float64
	window int
	sq     *matrix.Dense
	sqFlat []float64
	n      int
}

// sink keeps results alive so the compiler cannot drop the calls.
var sink float64

func kernels() []kernel {
	return []kernel{
		{"add", func(in *inputs) error { sink = array.Add(in.x, in.y)[0]; return nil }},
		{"mean", func(in *inputs) error { return keep(array.Mean(in.x)) }},
		{"variance", func(in *inputs) error { return keep(array.Variance(in.x)) }},
		{"median", func(in *inputs) error { return keep(array.Median(in.x)) }},
		{"sort", func(in *inputs) error { sink = array.Sort(in.x)[0]; return nil }},
		{"rolling_mean", func(in *inputs) error { return keepSlice(array.RollingMean(in.x, in.window)) }},
		{"rolling_std", func(in *inputs) error { return keepSlice(array.RollingStd(in.x, in.window)) }},
		{"cumsum", func(in *inputs) error { sink = array.CumSum(in.x)[in.n-1]; return nil }},
		{"interpolate", func(in *inputs) error { sink = array.InterpolateLinear(in.gappy)[0]; return nil }},
		{"describe", func(in *inputs) error {
			d, err := array.Describe(in.x)
			sink = d.Mean
			return err
		}},
		{"matmul", func(in *inputs) error {
			p, err := matrix.Mul(in.sq, in.sq)
			if err != nil {
				return err
			}
			return keep(p.At(0, 0))
		}},
		{"inverse", func(in *inputs) error {
			inv, err := matrix.InverseFlat(in.sqFlat, in.sq.Rows())
			if err != nil {
				return err
			}
			sink = inv[0]
			return nil
		}},
	}
}

func keep(v float64, err error) error {
	sink = v
	return err
}

func keepSlice(v []float64, err error) error {
	if len(v) > 0 {
		sink = v[len(v)-1]
	}
	return err
}

func kernelNames() []string {
	ks := kernels()
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.name
	}
	return names
}

// parseFlags reads args into a config. Usage and errors are written to out.
func parseFlags(args []string, out io.Writer) (config, error) {
	fs := flag.NewFlagSet("quicklybench", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		cfg   config
		ops   string
		level string
	)
	fs.IntVar(&cfg.Size, "size", 100_000, "elements per input buffer")
	fs.IntVar(&cfg.Iter, "iter", 10, "iterations per kernel")
	fs.IntVar(&cfg.Window, "window", 20, "window for rolling kernels")
	fs.Int64Var(&cfg.Seed, "seed", array.DefaultSeed, "seed for the input generator")
	fs.StringVar(&ops, "ops", "all", "comma-separated kernels: "+strings.Join(kernelNames(), ","))
	fs.StringVar(&level, "level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.Size < 1 || cfg.Iter < 1 || cfg.Window < 1 {
		err := fmt.Errorf("%w: size, iter and window must be >= 1", errBadSetting)
		fmt.Fprintln(out, err)
		return config{}, err
	}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		err = fmt.Errorf("%w: level %q", errBadSetting, level)
		fmt.Fprintln(out, err)
		return config{}, err
	}

	sel, err := selectOps(ops)
	if err != nil {
		fmt.Fprintln(out, err)
		return config{}, err
	}
	cfg.Ops = sel

	return cfg, nil
}

func selectOps(list string) ([]string, error) {
	if list == "all" {
		return kernelNames(), nil
	}

	known := make(map[string]bool)
	for _, n := range kernelNames() {
		known[n] = true
	}

	var sel []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("%w: %q", errUnknownOp, name)
		}
		sel = append(sel, name)
	}
	if len(sel) == 0 {
		return nil, errNoOps
	}

	return sel, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// result is the measured latency of one kernel.
type result struct {
	Op  string
	Avg time.Duration
}

// run prepares the inputs, logs the host profile and times each selected
// kernel. It stops early when ctx is cancelled.
func run(ctx context.Context, cfg config, logger *slog.Logger) ([]result, error) {
	logger.Info("host",
		"go", runtime.Version(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"cpus", runtime.NumCPU(),
		"features", cpuFeatures(),
	)

	in, err := prepare(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("inputs ready", "size", cfg.Size, "matrix", in.sq.Rows(), "seed", cfg.Seed)

	index := make(map[string]kernel)
	for _, k := range kernels() {
		index[k.name] = k
	}

	results := make([]result, 0, len(cfg.Ops))
	for _, name := range cfg.Ops {
		k, ok := index[name]
		if !ok {
			return results, fmt.Errorf("%w: %q", errUnknownOp, name)
		}

		var total time.Duration
		for i := 0; i < cfg.Iter; i++ {
			if err = ctx.Err(); err != nil {
				return results, err
			}
			start := time.Now()
			if err = k.run(in); err != nil {
				return results, fmt.Errorf("%s: %w", name, err)
			}
			total += time.Since(start)
		}

		avg := total / time.Duration(cfg.Iter)
		results = append(results, result{Op: name, Avg: avg})
		logger.Info("kernel", "op", name, "iter", cfg.Iter, "avg", avg)
	}

	return results, nil
}

// prepare builds deterministic shuffled ramps. The matrix side is sqrt(size)
// capped at 256 and made diagonally dominant so it always inverts.
func prepare(cfg config) (*inputs, error) {
	base, err := array.Linspace(-1, 1, cfg.Size)
	if err != nil {
		return nil, err
	}
	x := array.Shuffle(base, array.WithSeed(cfg.Seed))
	y := array.Shuffle(base, array.WithSeed(cfg.Seed+1))

	gappy := make([]float64, len(x))
	copy(gappy, x)
	for i := 1; i < len(gappy); i += 7 {
		gappy[i] = math.NaN()
	}

	side := int(math.Sqrt(float64(cfg.Size)))
	side = max(1, min(side, 256))
	flat := make([]float64, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			flat[i*side+j] = x[(i*side+j)%len(x)]
		}
		flat[i*side+i] += float64(side)
	}
	sq, err := matrix.NewDenseFrom(side, side, flat)
	if err != nil {
		return nil, err
	}

	return &inputs{
		x:      x,
		y:      y,
		gappy:  gappy,
		window: min(cfg.Window, cfg.Size),
		sq:     sq,
		sqFlat: flat,
		n:      cfg.Size,
	}, nil
}

// cpuFeatures lists the SIMD extensions the host reports.
func cpuFeatures() string {
	var f []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX2 {
			f = append(f, "avx2")
		}
		if cpu.X86.HasAVX512F {
			f = append(f, "avx512f")
		}
		if cpu.X86.HasFMA {
			f = append(f, "fma")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			f = append(f, "asimd")
		}
	}
	if len(f) == 0 {
		return "none"
	}

	return strings.Join(f, ",")
}
