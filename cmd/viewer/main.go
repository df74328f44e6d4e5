// Package main loads the character viewer headlessly and reports progress.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	viewercmd "github.com/mashirovoc/blog/internal/cmd/viewer"
	"github.com/mashirovoc/blog/internal/platform/config"
)

func main() {
	cfg, err := viewercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[VIEWER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := viewercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}
