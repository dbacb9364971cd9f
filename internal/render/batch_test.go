package render

import (
	"testing"

	"gridmesh/pkg/grid"
	"gridmesh/pkg/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridMesh(w, h int, fuzzy bool) *mesh.ShapeBuilder {
	g := grid.New2D[uint8](w, h)
	sb := mesh.NewShapeBuilder()
	color := func(uint8) mesh.Color { return mesh.DefaultColor }
	if fuzzy {
		mesh.DrawGridFuzzy(sb, g, color, 0)
	} else {
		mesh.DrawGrid(sb, g, color, 0)
	}
	return sb
}

func collect(t *testing.T, bt *Batcher, buf *mesh.Buffer) (batches, triangles int) {
	t.Helper()
	err := bt.Split(buf, func(b Batch) {
		batches++
		triangles += len(b.Indices) / 3
		assert.LessOrEqual(t, len(b.Vertices), bt.MaxVertices)
		for _, i := range b.Indices {
			assert.Less(t, int(i), len(b.Vertices))
		}
	})
	require.NoError(t, err)
	return batches, triangles
}

func TestSplitSingleBatch(t *testing.T) {
	sb := gridMesh(3, 3, false)
	bt := &Batcher{MaxVertices: 1 << 16}
	batches, tris := collect(t, bt, &sb.Buffer)
	assert.Equal(t, 1, batches)
	assert.Equal(t, sb.TriangleCount(), tris)
}

func TestSplitRespectsLimit(t *testing.T) {
	sb := gridMesh(3, 3, false)
	bt := &Batcher{MaxVertices: 8}
	batches, tris := collect(t, bt, &sb.Buffer)
	// two quads per batch
	assert.Equal(t, 5, batches)
	assert.Equal(t, 18, tris)

	fz := gridMesh(6, 6, true)
	bt.MaxVertices = 7
	_, tris = collect(t, bt, &fz.Buffer)
	assert.Equal(t, fz.TriangleCount(), tris)
}

func TestSplitPreservesGeometry(t *testing.T) {
	buf := &mesh.Buffer{}
	for i := 0; i < 4; i++ {
		buf.PushVertex(mesh.Vertex{Pos: [3]float32{float32(i), 0, 0}})
	}
	buf.PushIndices(3, 1, 2, 0, 3, 1, 2)

	bt := &Batcher{MaxVertices: 3}
	var got [][3]float32
	require.NoError(t, bt.Split(buf, func(b Batch) {
		for _, i := range b.Indices {
			got = append(got, b.Vertices[i].Pos)
		}
	}))
	want := [][3]float32{{3, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 0, 0}, {3, 0, 0}, {1, 0, 0}}
	assert.Equal(t, want, got)
}

func TestSplitErrors(t *testing.T) {
	buf := &mesh.Buffer{}
	buf.PushVertex(mesh.Vertex{})
	buf.PushIndices(0, 0, 5)

	bt := &Batcher{MaxVertices: 16}
	assert.Error(t, bt.Split(buf, func(Batch) {}))

	bt.MaxVertices = 1 << 17
	assert.Error(t, bt.Split(&mesh.Buffer{}, func(Batch) {}))
}

func TestScreenPos(t *testing.T) {
	x, y := ScreenPos([3]float32{-1, -1, 0}, 200, 100)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)
	x, y = ScreenPos([3]float32{0, 1, 0.5}, 200, 100)
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(100), y)
}
