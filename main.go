package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Thiht/go-bump/cmd"
)

func main() {
	ctx := context.Background()

	if err := cmd.Root().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
