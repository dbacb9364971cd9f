//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"gridmesh/pkg/mesh"

	"github.com/hajimehoshi/ebiten/v2"
)

// MeshPainter draws mesh buffers onto ebiten images with DrawTriangles.
type MeshPainter struct {
	batcher Batcher
	verts   []ebiten.Vertex
	white   *ebiten.Image
}

// NewMeshPainter allocates a painter and its solid white source texture.
func NewMeshPainter() *MeshPainter {
	src := ebiten.NewImage(3, 3)
	src.Fill(color.White)
	return &MeshPainter{
		batcher: Batcher{MaxVertices: math.MaxUint16},
		white:   src.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw renders buf onto dst, mapping normalized device coordinates to the
// full bounds of dst. Depth is ignored; triangles are drawn in index order.
func (p *MeshPainter) Draw(dst *ebiten.Image, buf *mesh.Buffer) error {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	return p.batcher.Split(buf, func(b Batch) {
		p.verts = p.verts[:0]
		for _, v := range b.Vertices {
			x, y := ScreenPos(v.Pos, w, h)
			p.verts = append(p.verts, ebiten.Vertex{
				DstX:   x,
				DstY:   y,
				SrcX:   1,
				SrcY:   1,
				ColorR: v.Color[0],
				ColorG: v.Color[1],
				ColorB: v.Color[2],
				ColorA: 1,
			})
		}
		dst.DrawTriangles(p.verts, b.Indices, p.white, nil)
	})
}
