package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/vk/docrun/internal/cli"
)

// main is the entrypoint for the docrun binary.
func main() {
	// Minimal logger until the per-invocation one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Entry points terminate the process through the lifecycle controller;
	// an error here means the command surface itself rejected the input.
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
