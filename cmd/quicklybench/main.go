// SPDX-License-Identifier: MIT

// Command quicklybench times a selection of quickly kernels on deterministic
// random buffers and logs the host profile and per-kernel latency.
//
// Usage:
//
//	quicklybench -size 100000 -iter 20 -ops mean,rolling_std,matmul -seed 7
//
// Exit status is 1 on invalid flags or when a kernel returns an error.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		// flag already printed usage and the reason
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err = run(ctx, cfg, logger); err != nil {
		logger.Error("benchmark failed", "err", err)
		stop()
		os.Exit(1)
	}
}
