package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/crimson-sun/tracelens/internal/config"
	"github.com/crimson-sun/tracelens/internal/logging"
	"github.com/crimson-sun/tracelens/internal/output"
	"github.com/crimson-sun/tracelens/internal/output/file"
	"github.com/crimson-sun/tracelens/internal/output/stdout"
	"github.com/crimson-sun/tracelens/internal/pipeline"
	"github.com/crimson-sun/tracelens/internal/source"
	"github.com/crimson-sun/tracelens/pkg/tracelens"

	// Register capture source implementations.
	_ "github.com/crimson-sun/tracelens/internal/source/file"
	_ "github.com/crimson-sun/tracelens/internal/source/stdin"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.Output.Format == "stdout", logging.ParseLevel(cfg.LogLevel))

	// Resolve source.
	ctor, err := source.Get(cfg.Source.Provider)
	if err != nil {
		log.Fatalf("failed to get capture source: %v", err)
	}
	src := ctor()

	// Resolve output.
	var out output.Output
	switch cfg.Output.Format {
	case "file":
		out, err = file.New(cfg.Output.Path)
		if err != nil {
			log.Fatalf("failed to create file output: %v", err)
		}
	default:
		out = stdout.New(cfg.Output.Pretty)
	}

	// Build pipeline.
	p := pipeline.New(src, out)
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []tracelens.Option
	if cfg.Engine.StartTime != 0 || cfg.Engine.EndTime != 0 {
		opts = append(opts, tracelens.WithTimeRange(cfg.Engine.StartTime, cfg.Engine.EndTime))
	}

	if err := p.Run(ctx, source.Config{Path: cfg.Source.Path}, opts...); err != nil {
		log.Fatalf("pipeline error: %v", err)
	}
}
