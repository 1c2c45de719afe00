//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"rockwash/internal/app"
	"rockwash/internal/core"
	_ "rockwash/internal/sims/rocks"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	log.SetOutput(os.Stderr)

	built, err := core.New(cfg.Sim, cfg.SimConfig(flag.CommandLine))
	if err != nil {
		log.WithError(err).WithField("sim", cfg.Sim).Fatal("cannot start simulation")
	}
	sim, ok := built.(app.Sim)
	if !ok {
		log.WithField("sim", cfg.Sim).Fatal("simulation cannot be displayed")
	}

	game := app.New(sim, cfg.Scale, cfg.CPS)
	size := sim.Size()

	ebiten.SetWindowTitle("rockwash: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("viewer stopped")
	}
}
