package briansbrain

import (
	"image/color"
	"strconv"

	"gridmesh/internal/core"
	"gridmesh/pkg/grid"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds the board dimensions and seeding density.
type Config struct {
	Width  int
	Height int
	// Sparsity seeds one firing cell per Sparsity cells on average.
	Sparsity int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Sparsity: 8}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["sparsity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Sparsity = parsed
		}
	}
	return c
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	sparsity int
	cur      *grid.Grid2D[uint8]
	nxt      *grid.Grid2D[uint8]
}

// New creates a Brain simulation from cfg.
func New(cfg Config) *Brain {
	return &Brain{
		sparsity: cfg.Sparsity,
		cur:      grid.New2D[uint8](cfg.Width, cfg.Height),
		nxt:      grid.New2D[uint8](cfg.Width, cfg.Height),
	}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.cur.Width(), H: b.cur.Height()} }

// Grid exposes the current state.
func (b *Brain) Grid() *grid.Grid2D[uint8] { return b.cur }

// Palette colors dying cells separately from firing ones.
func (b *Brain) Palette() []color.RGBA {
	return []color.RGBA{
		stateDead:  {A: 255},
		stateOn:    {R: 255, G: 255, B: 255, A: 255},
		stateDying: {R: 40, G: 90, B: 255, A: 255},
	}
}

// Parameters reports the board dimensions and seeding density.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridGroup(b.Size()),
		{
			Name:    "Seeding",
			Params:  []core.Parameter{core.IntParam("sparsity", "Sparsity", b.sparsity)},
			Summary: "one firing cell per sparsity cells on reset",
		},
	}}
}

// ParameterControls exposes the seeding density on the HUD.
func (b *Brain) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key: "sparsity", Label: "Sparsity", Type: core.ParamTypeInt,
		Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true,
	}}
}

// SetIntParameter updates sparsity; the new density applies on the next Reset.
func (b *Brain) SetIntParameter(key string, value int) bool {
	if key != "sparsity" || value <= 0 {
		return false
	}
	b.sparsity = value
	return true
}

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	cells := b.cur.Cells()
	for i := range cells {
		if rng.Chance(b.sparsity) {
			cells[i] = stateOn
			continue
		}
		cells[i] = stateDead
	}
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	w, h := b.cur.Width(), b.cur.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch b.cur.At(x, y) {
			case stateOn:
				b.nxt.Set(x, y, stateDying)
			case stateDying:
				b.nxt.Set(x, y, stateDead)
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if b.cur.At(b.cur.Wrap(x+dx, y+dy)) == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt.Set(x, y, stateOn)
				} else {
					b.nxt.Set(x, y, stateDead)
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
