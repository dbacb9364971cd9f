//go:build ebiten

package app

import (
	"image"
	"time"

	"gridmesh/internal/core"
	"gridmesh/internal/render"
	"gridmesh/internal/scene"
	"gridmesh/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface, meshing the
// sim's grid every frame. A HUD panel to the right of the mesh view shows
// mesh statistics and the sim's adjustable parameters.
type Game struct {
	sim     core.Sim
	scene   *scene.Scene
	painter *render.MeshPainter
	ticker  *core.FixedStep
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	ticks    int
	seed     int64
	err      error
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, sc *scene.Scene, scale, tps int, seed int64) *Game {
	return &Game{
		sim:     sim,
		scene:   sc,
		painter: render.NewMeshPainter(),
		ticker:  core.NewFixedStep(tps),
		hud:     ui.NewHUD(sim, ui.PanelWidth),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.ticks = 0
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.scene.Mode = g.scene.Mode.Toggle()
	}

	g.hud.Update(g.viewWidth())

	if g.tickOnce || (!g.paused && g.ticker.ShouldStep()) {
		g.sim.Step()
		g.ticks++
		g.tickOnce = false
	}
	return nil
}

// Draw meshes the current simulation state, renders it into the view area
// and paints the HUD beside it.
func (g *Game) Draw(screen *ebiten.Image) {
	vw := g.viewWidth()
	view := screen.SubImage(image.Rect(0, 0, vw, g.sim.Size().H*g.scale)).(*ebiten.Image)
	b := g.scene.Build(g.sim.Grid())
	if err := g.painter.Draw(view, &b.Buffer); err != nil && g.err == nil {
		g.err = err
	}

	stats := scene.StatsOf(b)
	g.hud.SetStatus(ui.Status{
		Sim:       g.sim.Name(),
		Mode:      g.scene.Mode.String(),
		Paused:    g.paused,
		Tick:      g.ticks,
		Vertices:  stats.Vertices,
		Triangles: stats.Triangles,
	})
	g.hud.Draw(screen, vw, g.scale)
}

// Layout returns the logical screen size: the mesh view plus the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.sim.Size().H * g.scale
}

func (g *Game) viewWidth() int {
	return g.sim.Size().W * g.scale
}
