package mesh

import "gridmesh/pkg/grid"

// DrawGrid emits one quad per cell spanning normalized device coordinates
// [-1, 1] at depth z. Cells share no vertices, so boundaries between
// differently colored cells stay sharp.
func DrawGrid[T any](b *ShapeBuilder, g *grid.Grid2D[T], color func(T) Color, z float32) {
	w, h := g.Width(), g.Height()
	cw := 2 / float32(w)
	ch := 2 / float32(h)

	for i := 0; i < w; i++ {
		x := ndc(i, w)
		for j := 0; j < h; j++ {
			y := ndc(j, h)
			b.PushColor(color(g.At(i, j)))
			b.Quad(
				[3]float32{x, y, z},
				[3]float32{x + cw, y, z},
				[3]float32{x, y + ch, z},
				[3]float32{x + cw, y + ch, z},
			)
			b.PopColor()
		}
	}
}

// DrawGridFuzzy emits one vertex per cell at the cell's corner and connects
// neighbouring cells with triangles, so colors blend across cell boundaries.
// A cell is joined to its left, upper and upper-left neighbours once all of
// them have been emitted.
func DrawGridFuzzy[T any](b *ShapeBuilder, g *grid.Grid2D[T], color func(T) Color, z float32) {
	w, h := g.Width(), g.Height()
	stride := uint32(h)

	for i := 0; i < w; i++ {
		x := ndc(i, w)
		for j := 0; j < h; j++ {
			y := ndc(j, h)
			b.PushColor(color(g.At(i, j)))
			cur := b.PushVertex([3]float32{x, y, z})
			b.PopColor()

			if i > 0 && j > 0 {
				left := cur - stride
				up := cur - 1
				upLeft := left - 1
				b.PushIndices(left, up, upLeft, left, cur, up)
			}
		}
	}
}

// ndc maps cell i of n onto [-1, 1).
func ndc(i, n int) float32 {
	return float32(i)/float32(n)*2 - 1
}
