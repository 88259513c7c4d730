//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"mad-sand/internal/app"
	"mad-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lvl, err := cfg.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid flags", "err", err)
		os.Exit(1)
	}
	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Error("invalid flags", "err", err)
		os.Exit(1)
	}

	sim := sand.NewWithConfig(simCfg)
	sim.SetLogger(log)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg, log)

	ebiten.SetWindowTitle("mad-sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}
