// Package scene turns a sim's grid into a drawable mesh.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gridmesh/internal/palette"
	"gridmesh/pkg/grid"
	"gridmesh/pkg/mesh"
)

// Mode selects how grid cells become triangles.
type Mode int

const (
	// ModeHard emits a private quad per cell.
	ModeHard Mode = iota
	// ModeFuzzy shares one vertex per cell and blends colors across cells.
	ModeFuzzy
)

func (m Mode) String() string {
	switch m {
	case ModeHard:
		return "hard"
	case ModeFuzzy:
		return "fuzzy"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "hard":
		return ModeHard, nil
	case "fuzzy":
		return ModeFuzzy, nil
	}
	return 0, fmt.Errorf("unknown mesh mode %q", s)
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeHard {
		return ModeFuzzy
	}
	return ModeHard
}

// Options configure a Scene.
type Options struct {
	Mode    Mode
	Palette palette.Palette
	Z       float32
	// Frame draws a border of width FrameMargin around the grid, which is
	// shrunk to fit inside it.
	Frame       bool
	FrameMargin float32
	FrameColor  mesh.Color
}

// DefaultOptions returns hard-edged meshing with the default palette.
func DefaultOptions() Options {
	return Options{
		Mode:        ModeHard,
		Palette:     palette.Default(),
		FrameMargin: 0.05,
		FrameColor:  mesh.Color{0.35, 0.35, 0.4},
	}
}

// Stats summarizes a built mesh.
type Stats struct {
	Vertices  int
	Triangles int
}

// Scene rebuilds the mesh for a grid each frame, reusing its buffers.
type Scene struct {
	Options
	cells *mesh.ShapeBuilder
	out   *mesh.ShapeBuilder
}

// New returns a Scene using opts.
func New(opts Options) *Scene {
	return &Scene{Options: opts, cells: mesh.NewShapeBuilder(), out: mesh.NewShapeBuilder()}
}

// Build meshes g and returns the builder holding the result. The returned
// builder is owned by the Scene and is overwritten by the next Build.
func (s *Scene) Build(g *grid.Grid2D[uint8]) *mesh.ShapeBuilder {
	s.cells.Clear()
	switch s.Mode {
	case ModeFuzzy:
		mesh.DrawGridFuzzy(s.cells, g, s.Palette.Lookup, s.Z)
	default:
		mesh.DrawGrid(s.cells, g, s.Palette.Lookup, s.Z)
	}
	if !s.Frame {
		return s.cells
	}

	s.out.Clear()
	s.out.WithColor(s.FrameColor, s.drawFrame)
	// Shrink toward (0, 0, Z) so the grid keeps the frame's depth.
	inset := mesh.Similarity(mgl32.QuatIdent(), mgl32.Vec3{0, 0, s.Z * s.FrameMargin}, 1-s.FrameMargin)
	s.out.WithTransform(inset, func() { s.out.Append(s.cells) })
	return s.out
}

// drawFrame emits the band between the unit square and the inset grid.
func (s *Scene) drawFrame() {
	outer := float32(1)
	inner := 1 - s.FrameMargin
	z := s.Z
	pt := func(x, y float32) [3]float32 { return [3]float32{x, y, z} }

	// bottom, top, left, right
	s.out.Quad(pt(-outer, -outer), pt(outer, -outer), pt(-outer, -inner), pt(outer, -inner))
	s.out.Quad(pt(-outer, inner), pt(outer, inner), pt(-outer, outer), pt(outer, outer))
	s.out.Quad(pt(-outer, -inner), pt(-inner, -inner), pt(-outer, inner), pt(-inner, inner))
	s.out.Quad(pt(inner, -inner), pt(outer, -inner), pt(inner, inner), pt(outer, inner))
}

// StatsOf reports the size of b.
func StatsOf(b *mesh.ShapeBuilder) Stats {
	return Stats{Vertices: b.VertexCount(), Triangles: b.TriangleCount()}
}
