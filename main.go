package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/iburimskiy/sketch-playground/internal/config"
	"github.com/iburimskiy/sketch-playground/internal/game"
	"github.com/iburimskiy/sketch-playground/internal/host"
	"github.com/iburimskiy/sketch-playground/internal/querystate"
	"github.com/iburimskiy/sketch-playground/internal/sketch"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := host.Require(host.Current(), host.MountPoints...); err != nil {
		fatal(log, "startup failed", err)
	}

	g, err := game.New(cfg, sketch.Default(), querystate.Current(cfg.Href), log)
	if err != nil {
		fatal(log, "startup failed", err)
	}

	if err := game.Run(g, cfg.TPS); err != nil {
		fatal(log, "game loop failed", err)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	game.ReportFatal(err)
	os.Exit(1)
}
