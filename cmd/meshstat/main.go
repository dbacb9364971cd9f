// Command meshstat steps a simulation headlessly and reports the size of the
// mesh built from its grid.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gridmesh/internal/config"
	"gridmesh/internal/core"
	"gridmesh/internal/render"
	"gridmesh/internal/scene"
	_ "gridmesh/internal/sims/briansbrain"
	_ "gridmesh/internal/sims/elementary"
	_ "gridmesh/internal/sims/life"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "ticks to simulate before meshing")
	every := flag.Int("every", 0, "also report every N ticks (0 disables)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, cfg, *steps, *every); err != nil {
		logger.Error("meshstat failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, steps, every int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)
	opts, err := cfg.SceneOptions(sim)
	if err != nil {
		return err
	}
	sc := scene.New(opts)
	logger.Debug("sim ready", "sim", sim.Name(), "w", sim.Size().W, "h", sim.Size().H, "mode", opts.Mode)

	for i := 1; i <= steps; i++ {
		sim.Step()
		if every > 0 && i%every == 0 && i != steps {
			if err := report(logger, sc, sim, i); err != nil {
				return err
			}
		}
	}
	return report(logger, sc, sim, steps)
}

func report(logger *slog.Logger, sc *scene.Scene, sim core.Sim, tick int) error {
	start := time.Now()
	b := sc.Build(sim.Grid())
	elapsed := time.Since(start)

	batches := 0
	bt := render.Batcher{MaxVertices: 1 << 16}
	if err := bt.Split(&b.Buffer, func(render.Batch) { batches++ }); err != nil {
		return err
	}

	st := scene.StatsOf(b)
	logger.Info("mesh",
		"tick", tick,
		"sim", sim.Name(),
		"mode", sc.Mode.String(),
		"vertices", st.Vertices,
		"triangles", st.Triangles,
		"batches16", batches,
		"live", live(sim),
		"build", elapsed,
	)
	return nil
}

func live(sim core.Sim) int {
	n := 0
	for _, c := range sim.Grid().Cells() {
		if c != 0 {
			n++
		}
	}
	return n
}
