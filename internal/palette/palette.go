package palette

import (
	"image/color"

	"gridmesh/pkg/mesh"
)

// Palette maps small integer cell states to mesh colors.
type Palette struct {
	Colors []mesh.Color
}

// Default returns the off/on palette used when a sim supplies none.
func Default() Palette {
	return Palette{Colors: []mesh.Color{{0, 0, 0}, {1, 1, 1}}}
}

// FromRGBA converts 8-bit colors to linear float colors.
func FromRGBA(colors []color.RGBA) Palette {
	p := Palette{Colors: make([]mesh.Color, len(colors))}
	for i, c := range colors {
		p.Colors[i] = mesh.Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
	}
	return p
}

// Lookup returns the color for cell value v. Values beyond the palette clamp
// to the last entry; an empty palette yields mesh.DefaultColor.
func (p Palette) Lookup(v uint8) mesh.Color {
	if len(p.Colors) == 0 {
		return mesh.DefaultColor
	}
	idx := int(v)
	if last := len(p.Colors) - 1; idx > last {
		idx = last
	}
	return p.Colors[idx]
}
