package mesh

// TransformBuilder is a Buffer whose pushed vertices are placed in the frame
// given by a stack of nested transforms.
type TransformBuilder struct {
	Buffer
	tfs TransformStack
}

// NewTransformBuilder returns an empty builder with an identity frame.
func NewTransformBuilder() *TransformBuilder { return &TransformBuilder{} }

// PushTransform enters a nested frame: t is composed onto the current
// transform, so it is expressed relative to every frame pushed before it.
func (b *TransformBuilder) PushTransform(t Transform) { b.tfs.Push(t) }

// PopTransform leaves the innermost frame and returns its cumulative
// transform. It reports false when no frame was pushed.
func (b *TransformBuilder) PopTransform() (Transform, bool) { return b.tfs.Pop() }

// Transform returns the current cumulative transform without popping it.
func (b *TransformBuilder) Transform() Transform { return b.tfs.Top() }

// TransformDepth returns how many frames are currently pushed.
func (b *TransformBuilder) TransformDepth() int { return b.tfs.Depth() }

// PushVertex moves v into the current frame, appends it and returns its
// index. The color is stored unmodified.
func (b *TransformBuilder) PushVertex(v Vertex) uint32 {
	v.Pos = b.tfs.Top().Apply(v.Pos)
	return b.Buffer.PushVertex(v)
}

// Append merges other's geometry into b. The vertices are placed in b's
// current frame, not other's, and other's indices are renumbered past b's
// existing vertices. other is not modified.
func (b *TransformBuilder) Append(other *TransformBuilder) {
	b.appendTransformed(&other.Buffer, b.tfs.Top())
}

// ShapeBuilder extends TransformBuilder with a color stack so callers push
// bare positions and the current color is attached to each vertex.
type ShapeBuilder struct {
	TransformBuilder
	colors ColorStack
}

// NewShapeBuilder returns an empty builder with an identity frame and the
// default color.
func NewShapeBuilder() *ShapeBuilder { return &ShapeBuilder{} }

// PushColor makes c the color of subsequently pushed vertices.
func (b *ShapeBuilder) PushColor(c Color) { b.colors.Push(c) }

// PopColor restores the previous color and returns the popped one.
func (b *ShapeBuilder) PopColor() (Color, bool) { return b.colors.Pop() }

// Color returns the current color without popping it.
func (b *ShapeBuilder) Color() Color { return b.colors.Top() }

// PushVertex transforms pos into the current frame, pairs it with the current
// color and returns the new vertex's index.
func (b *ShapeBuilder) PushVertex(pos [3]float32) uint32 {
	return b.TransformBuilder.PushVertex(Vertex{Pos: pos, Color: b.colors.Top()})
}

// Append merges other's geometry into b in b's current frame. Colors are
// already baked into other's vertices, so neither color stack is consulted.
func (b *ShapeBuilder) Append(other *ShapeBuilder) {
	b.TransformBuilder.Append(&other.TransformBuilder)
}

// WithTransform runs fn inside the frame t.
func (b *ShapeBuilder) WithTransform(t Transform, fn func()) {
	b.PushTransform(t)
	defer b.PopTransform()
	fn()
}

// WithColor runs fn with c as the current color.
func (b *ShapeBuilder) WithColor(c Color, fn func()) {
	b.PushColor(c)
	defer b.PopColor()
	fn()
}

// Quad pushes the four corners in order tl, tr, bl, br and the two triangles
// covering them.
func (b *ShapeBuilder) Quad(tl, tr, bl, br [3]float32) {
	itl := b.PushVertex(tl)
	itr := b.PushVertex(tr)
	ibl := b.PushVertex(bl)
	ibr := b.PushVertex(br)
	b.PushIndices(ibl, itr, itl, ibl, ibr, itr)
}
