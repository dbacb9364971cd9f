package render

import (
	"fmt"

	"gridmesh/pkg/mesh"
)

// Batch is a self-contained slice of a mesh whose indices fit in uint16.
type Batch struct {
	Vertices []mesh.Vertex
	Indices  []uint16
}

// Batcher splits meshes into batches of at most MaxVertices vertices so they
// can be drawn by APIs limited to 16-bit indices. Triangles are never split.
// Its buffers are reused between calls; a Batch is only valid inside emit.
type Batcher struct {
	MaxVertices int

	stamp []uint32
	local []uint16
	gen   uint32
	cur   Batch
}

// Split walks buf's triangles and calls emit for every full batch and for
// the final partial one. Trailing indices that do not complete a triangle
// are ignored.
func (bt *Batcher) Split(buf *mesh.Buffer, emit func(Batch)) error {
	if bt.MaxVertices < 3 || bt.MaxVertices > 1<<16 {
		return fmt.Errorf("render: batch size %d outside [3, 65536]", bt.MaxVertices)
	}
	n := len(buf.Vertices)
	if cap(bt.stamp) < n {
		bt.stamp = make([]uint32, n)
		bt.local = make([]uint16, n)
		bt.gen = 0
	}
	bt.stamp = bt.stamp[:n]
	bt.local = bt.local[:n]
	bt.reset()

	tris := len(buf.Indices) / 3
	for t := 0; t < tris; t++ {
		tri := buf.Indices[t*3 : t*3+3]
		fresh := 0
		for _, i := range tri {
			if int(i) >= n {
				return fmt.Errorf("render: index %d out of range for %d vertices", i, n)
			}
			if bt.stamp[i] != bt.gen {
				fresh++
			}
		}
		if len(bt.cur.Vertices)+fresh > bt.MaxVertices {
			emit(bt.cur)
			bt.reset()
		}
		for _, i := range tri {
			if bt.stamp[i] != bt.gen {
				bt.stamp[i] = bt.gen
				bt.local[i] = uint16(len(bt.cur.Vertices))
				bt.cur.Vertices = append(bt.cur.Vertices, buf.Vertices[i])
			}
			bt.cur.Indices = append(bt.cur.Indices, bt.local[i])
		}
	}
	if len(bt.cur.Indices) > 0 {
		emit(bt.cur)
	}
	return nil
}

func (bt *Batcher) reset() {
	bt.gen++
	if bt.gen == 0 {
		clear(bt.stamp)
		bt.gen = 1
	}
	bt.cur.Vertices = bt.cur.Vertices[:0]
	bt.cur.Indices = bt.cur.Indices[:0]
}

// ScreenPos maps normalized device coordinates onto a w*h target. Row 0 of a
// grid (y = -1) lands on the top edge, matching image coordinates.
func ScreenPos(p [3]float32, w, h int) (float32, float32) {
	return (p[0] + 1) / 2 * float32(w), (p[1] + 1) / 2 * float32(h)
}
