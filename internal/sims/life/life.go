package life

import (
	"strconv"

	"gridmesh/internal/core"
	"gridmesh/pkg/grid"
)

// Config holds the board dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128}
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
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cur *grid.Grid2D[uint8]
	nxt *grid.Grid2D[uint8]
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{cur: grid.New2D[uint8](w, h), nxt: grid.New2D[uint8](w, h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.Width(), H: l.cur.Height()} }

// Grid exposes the current generation.
func (l *Life) Grid() *grid.Grid2D[uint8] { return l.cur }

// Parameters reports the board dimensions.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{core.GridGroup(l.Size())}}
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.NewRNG(seed).FillBinary(l.cur)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.Width(), l.cur.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbors += int(l.cur.At(l.cur.Wrap(x+dx, y+dy)))
				}
			}
			alive := l.cur.At(x, y) == 1
			next := uint8(0)
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next = 1
			}
			l.nxt.Set(x, y, next)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
