package mesh

// TransformStack holds cumulative transforms. Each entry is the composition of
// every transform pushed below it, so the current frame is a single peek.
type TransformStack struct {
	tfs []Transform
}

// Push composes t onto the current top and pushes the result.
func (s *TransformStack) Push(t Transform) {
	s.tfs = append(s.tfs, s.Top().Mul(t))
}

// Pop removes and returns the top cumulative transform.
func (s *TransformStack) Pop() (Transform, bool) {
	if len(s.tfs) == 0 {
		return Transform{}, false
	}
	t := s.tfs[len(s.tfs)-1]
	s.tfs = s.tfs[:len(s.tfs)-1]
	return t, true
}

// Top returns the current cumulative transform, or the identity when empty.
func (s *TransformStack) Top() Transform {
	if len(s.tfs) == 0 {
		return Identity()
	}
	return s.tfs[len(s.tfs)-1]
}

// Depth returns the number of pushed transforms.
func (s *TransformStack) Depth() int { return len(s.tfs) }

// ColorStack holds color overrides. A push shadows the previous top; colors
// are never blended.
type ColorStack struct {
	colors []Color
}

// Push makes c the current color.
func (s *ColorStack) Push(c Color) {
	s.colors = append(s.colors, c)
}

// Pop removes and returns the top color.
func (s *ColorStack) Pop() (Color, bool) {
	if len(s.colors) == 0 {
		return Color{}, false
	}
	c := s.colors[len(s.colors)-1]
	s.colors = s.colors[:len(s.colors)-1]
	return c, true
}

// Top returns the current color, or DefaultColor when empty.
func (s *ColorStack) Top() Color {
	if len(s.colors) == 0 {
		return DefaultColor
	}
	return s.colors[len(s.colors)-1]
}

// Depth returns the number of pushed colors.
func (s *ColorStack) Depth() int { return len(s.colors) }
