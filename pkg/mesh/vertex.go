// Package mesh accumulates triangle-list geometry for a renderer.
//
// A Buffer collects vertices and indices verbatim. A TransformBuilder adds a
// stack of nested coordinate frames applied to every pushed vertex, and a
// ShapeBuilder adds a color stack on top of that so callers only push bare
// positions. Builders are not safe for concurrent use.
package mesh

// Color is a linear RGB triple in [0, 1].
type Color = [3]float32

// DefaultColor is used when a ShapeBuilder's color stack is empty.
var DefaultColor = Color{0.5, 0.5, 0.5}

// Vertex is the record consumed by the renderer: a position and a color.
type Vertex struct {
	Pos   [3]float32
	Color Color
}
