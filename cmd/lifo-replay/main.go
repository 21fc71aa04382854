package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/viant/afs"

	"lifo/internal/replay"
)

func main() {
	cfg, err := replay.ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	script, err := replay.Load(context.Background(), afs.New(), cfg.Script)
	if err != nil {
		logger.Error("failed to load script", "script", cfg.Script, "error", err)
		os.Exit(1)
	}
	if cfg.Capacity >= 0 {
		script.Capacity = cfg.Capacity
	}

	result, err := replay.Run(script, logger)
	if err != nil {
		logger.Error("replay failed", "script", cfg.Script, "error", err)
		os.Exit(1)
	}
	for _, top := range result.Tops() {
		fmt.Fprintln(os.Stdout, top)
	}
	os.Exit(0)
}
