//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridmesh/internal/app"
	"gridmesh/internal/config"
	"gridmesh/internal/core"
	"gridmesh/internal/scene"
	_ "gridmesh/internal/sims/briansbrain"
	_ "gridmesh/internal/sims/elementary"
	_ "gridmesh/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	opts, err := cfg.SceneOptions(sim)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, scene.New(opts), cfg.Scale, cfg.TPS, cfg.Seed)

	ebiten.SetWindowTitle("gridmesh - " + sim.Name())
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
