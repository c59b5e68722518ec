// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/quickly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 100_000, cfg.Size)
	assert.Equal(t, 10, cfg.Iter)
	assert.Equal(t, kernelNames(), cfg.Ops)
	assert.Equal(t, slog.LevelInfo, cfg.Level)
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown op", []string{"-ops", "mean,fft"}, errUnknownOp},
		{"empty ops", []string{"-ops", " , "}, errNoOps},
		{"zero size", []string{"-size", "0"}, errBadSetting},
		{"negative window", []string{"-window", "-2"}, errBadSetting},
		{"bad level", []string{"-level", "loud"}, errBadSetting},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			_, err := parseFlags(tc.args, &out)
			require.ErrorIs(t, err, tc.want)
			assert.NotEmpty(t, out.String())
		})
	}

	_, err := parseFlags([]string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

func TestRun_AllKernels(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-size", "400", "-iter", "2", "-window", "5", "-level", "debug"}, io.Discard)
	require.NoError(t, err)

	var logs bytes.Buffer
	res, err := run(context.Background(), cfg, newLogger(&logs, cfg.Level))
	require.NoError(t, err)
	require.Len(t, res, len(kernelNames()))
	for i, r := range res {
		assert.Equal(t, cfg.Ops[i], r.Op)
	}
	assert.Contains(t, logs.String(), "rolling_std")
	assert.Contains(t, logs.String(), "inputs ready")
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-size", "50", "-ops", "mean"}, io.Discard)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := run(ctx, cfg, newLogger(io.Discard, slog.LevelError))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res)
}

func TestPrepare_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := config{Size: 64, Iter: 1, Window: 3, Seed: 5}
	a, err := prepare(cfg)
	require.NoError(t, err)
	b, err := prepare(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.x, b.x)
	assert.Equal(t, 8, a.sq.Rows())
	assert.NotEqual(t, a.x, a.y)
}

// Not parallel: kernels write the package sink.
func TestKernels_MatmulKeepsProduct(t *testing.T) {
	in, err := prepare(config{Size: 16, Iter: 1, Window: 2, Seed: 3})
	require.NoError(t, err)

	want, err := matrix.Mul(in.sq, in.sq)
	require.NoError(t, err)
	w00, err := want.At(0, 0)
	require.NoError(t, err)

	for _, k := range kernels() {
		if k.name != "matmul" {
			continue
		}
		require.NoError(t, k.run(in))
		assert.Equal(t, w00, sink)
		return
	}
	t.Fatal("matmul kernel not registered")
}
