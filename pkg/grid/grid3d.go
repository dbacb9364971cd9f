package grid

import "fmt"

// Grid3D stores width*height*length cells of type T.
type Grid3D[T any] struct {
	w, h, l int
	data    []T
}

// New3D allocates a zero-valued grid with the given dimensions.
func New3D[T any](w, h, l int) *Grid3D[T] {
	if w < 0 || h < 0 || l < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%dx%d", w, h, l))
	}
	return &Grid3D[T]{w: w, h: h, l: l, data: make([]T, w*h*l)}
}

// FromFlat3D wraps data as a grid with the given width and height. The length
// is derived from len(data), which must be a multiple of width*height.
func FromFlat3D[T any](w, h int, data []T) *Grid3D[T] {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("grid: dimensions must be positive, got %dx%d", w, h))
	}
	layer := w * h
	if len(data)%layer != 0 || len(data)%w != 0 {
		panic(fmt.Sprintf("grid: %d cells do not divide into %dx%d layers", len(data), w, h))
	}
	return &Grid3D[T]{w: w, h: h, l: len(data) / layer, data: data}
}

// Width returns the extent along x.
func (g *Grid3D[T]) Width() int { return g.w }

// Height returns the extent along y.
func (g *Grid3D[T]) Height() int { return g.h }

// Length returns the extent along z.
func (g *Grid3D[T]) Length() int { return g.l }

// Len returns the total number of cells.
func (g *Grid3D[T]) Len() int { return len(g.data) }

// Index returns the linear slice index for (x, y, z).
func (g *Grid3D[T]) Index(x, y, z int) int {
	if x < 0 || x >= g.w || y < 0 || y >= g.h || z < 0 || z >= g.l {
		panic(fmt.Sprintf("grid: (%d, %d, %d) out of bounds for %dx%dx%d", x, y, z, g.w, g.h, g.l))
	}
	return x + y*g.w + z*g.w*g.h
}

// At returns the value stored at (x, y, z).
func (g *Grid3D[T]) At(x, y, z int) T { return g.data[g.Index(x, y, z)] }

// Ptr returns a pointer to the cell at (x, y, z).
func (g *Grid3D[T]) Ptr(x, y, z int) *T { return &g.data[g.Index(x, y, z)] }

// Set stores v at (x, y, z).
func (g *Grid3D[T]) Set(x, y, z int, v T) { g.data[g.Index(x, y, z)] = v }

// Cells exposes the backing slice.
func (g *Grid3D[T]) Cells() []T { return g.data }

// Clone returns a deep copy of the grid.
func (g *Grid3D[T]) Clone() *Grid3D[T] {
	return &Grid3D[T]{w: g.w, h: g.h, l: g.l, data: append([]T(nil), g.data...)}
}
