package palette

import (
	"image/color"
	"testing"

	"gridmesh/pkg/mesh"

	"github.com/stretchr/testify/assert"
)

func TestLookupClamps(t *testing.T) {
	p := Default()
	assert.Equal(t, mesh.Color{0, 0, 0}, p.Lookup(0))
	assert.Equal(t, mesh.Color{1, 1, 1}, p.Lookup(1))
	assert.Equal(t, mesh.Color{1, 1, 1}, p.Lookup(200))
	assert.Len(t, p.Colors, 2)
}

func TestLookupEmpty(t *testing.T) {
	assert.Equal(t, mesh.DefaultColor, Palette{}.Lookup(3))
}

func TestFromRGBA(t *testing.T) {
	p := FromRGBA([]color.RGBA{{R: 255, A: 255}, {G: 51, B: 255}})
	assert.Equal(t, mesh.Color{1, 0, 0}, p.Lookup(0))
	assert.InDelta(t, 0.2, p.Lookup(1)[1], 1e-6)
	assert.Equal(t, float32(1), p.Lookup(1)[2])
}
