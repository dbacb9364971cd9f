//go:build !ebiten

package ui

import "gridmesh/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(Status) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
