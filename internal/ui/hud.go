//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gridmesh/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerFg   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFg    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimFg      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFg   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	disabledBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disabledFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the status and parameter panel to the right of the mesh view.
type HUD struct {
	sim     core.Sim
	ctl     *controlPanel
	status  Status
	offsetX int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for sim with the given panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, ctl: newControlPanel(sim, width)}
	if h.ctl.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.ctl.width
}

// Update refreshes control values from the sim and handles button clicks.
// panelOffsetX is the screen x of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.ctl.refresh(provider.Parameters())
	}
	if len(h.ctl.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= h.offsetX {
		h.ctl.click(mx-h.offsetX, my)
	}
}

// SetStatus replaces the status lines shown by the next Draw.
func (h *HUD) SetStatus(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// Draw paints the panel at offsetX, as tall as the sim view at scale.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.ctl.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.ctl.width, height)
	}
	h.panel.Fill(panelBg)
	h.drawStatus()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.ctl.title, face, panelPadding, y, headerFg)
	for _, line := range h.status.Lines() {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, dimFg)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	if len(h.ctl.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop()+labelBaseline, dimFg)
		return
	}
	for i := range h.ctl.controls {
		state := &h.ctl.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelFg)

		fg := labelFg
		if !state.hasValue {
			fg = dimFg
		}
		w := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-w, y, fg)

		h.drawButton(state.minusRect, "-", h.ctl.canAdjust(i, -1))
		h.drawButton(state.plusRect, "+", h.ctl.canAdjust(i, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, buttonFg
	if !enabled {
		bg, fg = disabledBg, disabledFg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
