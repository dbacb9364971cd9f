package elementary

import (
	"strconv"

	"gridmesh/internal/core"
	"gridmesh/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Rule: 110}
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically:
// row 0 is the newest generation and older rows scroll towards the bottom.
type Elementary struct {
	rule  uint8
	cells *grid.Grid2D[uint8]
	tmp   []uint8
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	return &Elementary{rule: rule, cells: grid.New2D[uint8](w, h), tmp: make([]uint8, w)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cells.Width(), H: e.cells.Height()} }

// Grid exposes the history buffer.
func (e *Elementary) Grid() *grid.Grid2D[uint8] { return e.cells }

// Parameters reports the board dimensions and Wolfram rule.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridGroup(e.Size()),
		{Name: "Rule", Params: []core.Parameter{core.IntParam("rule", "Rule", int(e.rule))}},
	}}
}

// ParameterControls exposes the rule number on the HUD.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key: "rule", Label: "Rule", Type: core.ParamTypeInt,
		Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true,
	}}
}

// SetIntParameter switches the rule; later generations use it immediately.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 {
		return false
	}
	e.rule = uint8(value)
	return true
}

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.cells.Fill(0)
	if w := e.cells.Width(); w > 0 {
		e.cells.Set(w/2, 0, 1)
	}
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, h := e.cells.Width(), e.cells.Height()
	if w == 0 || h == 0 {
		return
	}
	cells := e.cells.Cells()
	copy(e.tmp, cells[:w])
	copy(cells[w:], cells[:w*(h-1)])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		e.cells.Set(x, 0, (e.rule>>idx)&1)
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
