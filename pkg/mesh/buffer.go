package mesh

import (
	"fmt"
	"math"
)

// MaxVertices is the largest number of vertices a Buffer can hold. Indices
// are uint32, so the last addressable vertex is MaxVertices-1.
const MaxVertices = math.MaxUint32

// Buffer accumulates vertices and triangle-list indices. Every three
// consecutive indices form one triangle.
type Buffer struct {
	Vertices []Vertex
	Indices  []uint32
}

// PushVertex appends v and returns its index.
func (b *Buffer) PushVertex(v Vertex) uint32 {
	idx := nextIndex(len(b.Vertices))
	b.Vertices = append(b.Vertices, v)
	return idx
}

// PushIndices appends idx verbatim. Values are not checked against the
// vertex count.
func (b *Buffer) PushIndices(idx ...uint32) {
	b.Indices = append(b.Indices, idx...)
}

// Clear drops all geometry, keeping the allocated capacity.
func (b *Buffer) Clear() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int { return len(b.Vertices) }

// TriangleCount returns the number of complete triangles.
func (b *Buffer) TriangleCount() int { return len(b.Indices) / 3 }

// IsEmpty reports whether the buffer has no vertices.
func (b *Buffer) IsEmpty() bool { return len(b.Vertices) == 0 }

// appendTransformed grafts other onto b. other's vertices are moved by tf and
// its indices are offset by b's vertex count before the merge.
func (b *Buffer) appendTransformed(other *Buffer, tf Transform) {
	base := mergeBase(len(b.Vertices), len(other.Vertices))
	for _, v := range other.Vertices {
		v.Pos = tf.Apply(v.Pos)
		b.Vertices = append(b.Vertices, v)
	}
	for _, i := range other.Indices {
		b.Indices = append(b.Indices, i+base)
	}
}

// nextIndex returns n as a vertex index, panicking when n vertices already
// fill the index range.
func nextIndex(n int) uint32 {
	if uint64(n) >= MaxVertices {
		panic(fmt.Sprintf("mesh: vertex limit exceeded (%d)", uint64(MaxVertices)))
	}
	return uint32(n)
}

// mergeBase returns have as the index offset for merging add more vertices,
// panicking when the merged count would exceed MaxVertices.
func mergeBase(have, add int) uint32 {
	if uint64(have)+uint64(add) > MaxVertices {
		panic(fmt.Sprintf("mesh: vertex limit exceeded merging %d vertices into %d", add, have))
	}
	return uint32(have)
}
