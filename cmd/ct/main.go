package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gahlberg/ChromaTerm/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override rules file path (optional, defaults to ~/.chromatermrc)")
	demo := flag.Bool("demo", false, "print available color names and exit")
	holdWait := flag.Duration("hold-wait", 0, "wait for the rest of a partial line (optional, defaults to 500µs)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Demo: *demo}
	if wait := *holdWait; wait > 0 {
		opts.HoldWait = wait
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "ct: %v\n", err)
		return 1
	}
	return 0
}
