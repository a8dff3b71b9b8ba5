package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	minesweepercmd "github.com/louisbranch/minesweeper/internal/cmd/minesweeper"
	entrypoint "github.com/louisbranch/minesweeper/internal/platform/cmd"
	"github.com/louisbranch/minesweeper/internal/platform/config"
)

func main() {
	cfg, err := minesweepercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitWithCode(config.ExitUsage, "parse flags: %v", err)
	}
	entrypoint.SetupLogging(entrypoint.ServiceMinesweeper)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = minesweepercmd.Run(ctx, cfg)
	stop()
	if err != nil {
		code, message := minesweepercmd.Failure(err, cfg.Locale)
		config.ExitWithCode(code, "%s", message)
	}
}
