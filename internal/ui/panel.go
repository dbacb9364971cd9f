package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"gridmesh/internal/core"
)

// PanelWidth is the default HUD width in pixels.
const PanelWidth = 220

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
)

// Status is the per-frame summary shown above the controls.
type Status struct {
	Sim       string
	Mode      string
	Paused    bool
	Tick      int
	Vertices  int
	Triangles int
}

// Lines renders s one fact per line.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		"sim: " + s.Sim,
		"mesh: " + s.Mode,
		"state: " + state,
		fmt.Sprintf("tick: %d", s.Tick),
		fmt.Sprintf("vertices: %d", s.Vertices),
		fmt.Sprintf("triangles: %d", s.Triangles),
	}
}

func statusHeight() int {
	return len(Status{}.Lines()) * statusSpacing
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel holds the adjustable parameters of one sim and the hit
// rectangles of their buttons, in panel-local pixels.
type controlPanel struct {
	title    string
	width    int
	controls []controlState
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
}

func newControlPanel(sim core.Sim, width int) *controlPanel {
	if width < 0 {
		width = 0
	}
	p := &controlPanel{title: buildTitle(sim), width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl, value: "--"})
		}
		p.layout()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.ints = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		p.floats = setter
	}
	return p
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

func controlsTop() int {
	return panelPadding + headerBaseline + statusHeight() + 14
}

func (p *controlPanel) layout() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop() + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
}

// refresh copies current values from snap into the controls.
func (p *controlPanel) refresh(snap core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = v
			state.floatValue = float64(v)
			state.value = strconv.Itoa(v)
			state.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = v
			state.value = formatFloat(state.control, v)
			state.hasValue = true
		}
	}
}

// next returns the value one step in direction dir, clamped to the control's
// bounds. ok is false when the value would not change.
func (s *controlState) next(dir int) (float64, bool) {
	if !s.hasValue || dir == 0 {
		return 0, false
	}
	ctrl := s.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		target := s.intValue + dir*step
		if ctrl.HasMin {
			target = max(target, int(math.Round(ctrl.Min)))
		}
		if ctrl.HasMax {
			target = min(target, int(math.Round(ctrl.Max)))
		}
		return float64(target), target != s.intValue
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target := s.floatValue + float64(dir)*step
		if ctrl.HasMin {
			target = math.Max(target, ctrl.Min)
		}
		if ctrl.HasMax {
			target = math.Min(target, ctrl.Max)
		}
		return target, math.Abs(target-s.floatValue) >= 1e-9
	}
	return 0, false
}

func (p *controlPanel) canAdjust(i, dir int) bool {
	state := &p.controls[i]
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.ints == nil {
			return false
		}
	case core.ParamTypeFloat:
		if p.floats == nil {
			return false
		}
	}
	_, ok := state.next(dir)
	return ok
}

// adjust steps control i and reports whether the sim accepted the change.
func (p *controlPanel) adjust(i, dir int) bool {
	if !p.canAdjust(i, dir) {
		return false
	}
	state := &p.controls[i]
	target, _ := state.next(dir)
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(target)
		if !p.ints.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.intValue = v
		state.floatValue = target
		state.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !p.floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
	return true
}

// click applies the button under panel-local (x, y), if any.
func (p *controlPanel) click(x, y int) bool {
	for i := range p.controls {
		switch {
		case pointInRect(x, y, p.controls[i].minusRect):
			return p.adjust(i, -1)
		case pointInRect(x, y, p.controls[i].plusRect):
			return p.adjust(i, 1)
		}
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
