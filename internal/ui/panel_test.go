package ui

import (
	"testing"

	"gridmesh/internal/core"
	"gridmesh/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type knobSim struct {
	level int
	gain  float64
	veto  bool
}

func (s *knobSim) Name() string                           { return "knobs" }
func (s *knobSim) Size() core.Size                        { return core.Size{W: 4, H: 4} }
func (s *knobSim) Reset(int64)                            {}
func (s *knobSim) Step()                                  {}
func (s *knobSim) Grid() *grid.Grid2D[uint8]              { return grid.New2D[uint8](4, 4) }
func (s *knobSim) SetFloatParameter(string, float64) bool { return false }

func (s *knobSim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Knobs",
		Params: []core.Parameter{
			core.IntParam("level", "Level", s.level),
			core.FloatParam("gain", "Gain", s.gain),
		},
	}}}
}

func (s *knobSim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "level", Label: "Level", Type: core.ParamTypeInt, Step: 2, Min: 0, Max: 5, HasMin: true, HasMax: true},
		{Key: "gain", Label: "Gain", Type: core.ParamTypeFloat, Step: 0.01},
		{Key: "absent", Label: "Absent", Type: core.ParamTypeInt},
	}
}

func (s *knobSim) SetIntParameter(key string, v int) bool {
	if key != "level" || s.veto {
		return false
	}
	s.level = v
	return true
}

func TestStatusLines(t *testing.T) {
	lines := Status{Sim: "life", Mode: "fuzzy", Paused: true, Tick: 3, Vertices: 12, Triangles: 12}.Lines()
	assert.Equal(t, []string{
		"sim: life",
		"mesh: fuzzy",
		"state: paused",
		"tick: 3",
		"vertices: 12",
		"triangles: 12",
	}, lines)
	assert.Equal(t, "state: running", Status{}.Lines()[2])
}

func TestControlPanelRefresh(t *testing.T) {
	sim := &knobSim{level: 2, gain: 0.5}
	p := newControlPanel(sim, PanelWidth)
	require.Len(t, p.controls, 3)
	assert.Equal(t, "Knobs Controls", p.title)

	p.refresh(sim.Parameters())
	assert.Equal(t, "2", p.controls[0].value)
	assert.Equal(t, "0.50", p.controls[1].value)
	assert.False(t, p.controls[2].hasValue)
	assert.Equal(t, "--", p.controls[2].value)
}

func TestControlPanelAdjustClamps(t *testing.T) {
	sim := &knobSim{level: 2}
	p := newControlPanel(sim, PanelWidth)
	p.refresh(sim.Parameters())

	assert.True(t, p.adjust(0, 1))
	assert.Equal(t, 4, sim.level)
	assert.True(t, p.adjust(0, 1), "clamped to max")
	assert.Equal(t, 5, sim.level)
	assert.False(t, p.canAdjust(0, 1))
	assert.False(t, p.adjust(0, 1))
	assert.Equal(t, "5", p.controls[0].value)

	// controls without a value never adjust
	assert.False(t, p.adjust(2, 1))

	sim.veto = true
	assert.False(t, p.adjust(0, -1))
	assert.Equal(t, 5, sim.level)
	assert.Equal(t, 5, p.controls[0].intValue)
}

func TestControlPanelFloatRejected(t *testing.T) {
	sim := &knobSim{gain: 0.5}
	p := newControlPanel(sim, PanelWidth)
	p.refresh(sim.Parameters())

	assert.True(t, p.canAdjust(1, 1))
	assert.False(t, p.adjust(1, 1))
	assert.Equal(t, "0.50", p.controls[1].value)
}

func TestControlPanelClick(t *testing.T) {
	sim := &knobSim{level: 2}
	p := newControlPanel(sim, PanelWidth)
	p.refresh(sim.Parameters())

	minus := p.controls[0].minusRect
	plus := p.controls[0].plusRect
	assert.Equal(t, PanelWidth-panelPadding, plus.Max.X)
	assert.GreaterOrEqual(t, minus.Min.Y, controlsTop())

	assert.True(t, p.click(minus.Min.X, minus.Min.Y))
	assert.Equal(t, 0, sim.level)
	assert.False(t, p.click(0, 0))
	assert.True(t, p.click(plus.Max.X-1, plus.Max.Y-1))
	assert.Equal(t, 2, sim.level)
}

func TestBuildTitle(t *testing.T) {
	assert.Equal(t, "Controls", buildTitle(nil))
	assert.Equal(t, "Knobs Controls", buildTitle(&knobSim{}))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.1235", formatFloat(core.ParameterControl{Step: 0.0001}, 0.12345))
	assert.Equal(t, "0.123", formatFloat(core.ParameterControl{Step: 0.005}, 0.12345))
	assert.Equal(t, "0.5", formatFloat(core.ParameterControl{Step: 0.5}, 0.5))
}
