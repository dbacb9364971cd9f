// Package grid provides dense fixed-size 2D and 3D containers backed by a
// single flat slice.
//
// Cells are stored x-major: the linear index of (x, y) is x + y*width and the
// linear index of (x, y, z) is x + y*width + z*width*height. Out-of-range
// coordinates are programming errors and panic.
package grid

import "fmt"

// Grid2D stores width*height cells of type T.
type Grid2D[T any] struct {
	w, h int
	data []T
}

// New2D allocates a zero-valued grid with the given dimensions.
func New2D[T any](w, h int) *Grid2D[T] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", w, h))
	}
	return &Grid2D[T]{w: w, h: h, data: make([]T, w*h)}
}

// FromFlat2D wraps data as a grid of the given width. The height is derived
// from len(data), which must be a multiple of width. The grid takes ownership
// of data.
func FromFlat2D[T any](w int, data []T) *Grid2D[T] {
	if w <= 0 {
		panic(fmt.Sprintf("grid: width must be positive, got %d", w))
	}
	if len(data)%w != 0 {
		panic(fmt.Sprintf("grid: %d cells do not divide into rows of width %d", len(data), w))
	}
	return &Grid2D[T]{w: w, h: len(data) / w, data: data}
}

// Width returns the number of columns.
func (g *Grid2D[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid2D[T]) Height() int { return g.h }

// Len returns the total number of cells.
func (g *Grid2D[T]) Len() int { return len(g.data) }

// Index returns the linear slice index for (x, y).
func (g *Grid2D[T]) Index(x, y int) int {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(fmt.Sprintf("grid: (%d, %d) out of bounds for %dx%d", x, y, g.w, g.h))
	}
	return x + y*g.w
}

// At returns the value stored at (x, y).
func (g *Grid2D[T]) At(x, y int) T { return g.data[g.Index(x, y)] }

// Ptr returns a pointer to the cell at (x, y) for in-place mutation.
func (g *Grid2D[T]) Ptr(x, y int) *T { return &g.data[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *Grid2D[T]) Set(x, y int, v T) { g.data[g.Index(x, y)] = v }

// Cells exposes the backing slice so callers can read/write values in bulk.
func (g *Grid2D[T]) Cells() []T { return g.data }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid2D[T]) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Fill sets every cell to v.
func (g *Grid2D[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid2D[T]) Clone() *Grid2D[T] {
	return &Grid2D[T]{w: g.w, h: g.h, data: append([]T(nil), g.data...)}
}
