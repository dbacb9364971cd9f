package core

import (
	"testing"
	"time"

	"gridmesh/pkg/grid"

	"github.com/stretchr/testify/assert"
)

func TestFixedStep(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.True(t, fs.ShouldStep(), "first tick is immediate")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(60 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestRNGDeterministic(t *testing.T) {
	a := grid.New2D[uint8](16, 16)
	b := grid.New2D[uint8](16, 16)
	NewRNG(7).FillBinary(a)
	NewRNG(7).FillBinary(b)
	assert.Equal(t, a.Cells(), b.Cells())
	for _, c := range a.Cells() {
		assert.LessOrEqual(t, c, uint8(1))
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	assert.NotContains(t, Sims(), "")
	assert.NotContains(t, Sims(), "nil-factory")

	Register("zz-test", func(map[string]string) Sim { return nil })
	defer delete(sims, "zz-test")
	names := Names()
	assert.Contains(t, names, "zz-test")
	assert.IsIncreasing(t, names)
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		GridGroup(Size{W: 64, H: 32}),
		{Name: "Rule", Params: []Parameter{IntParam("rule", "Rule", 90), FloatParam("p", "P", 0.25)}},
	}}

	p, ok := snap.Lookup("h")
	assert.True(t, ok)
	assert.Equal(t, Parameter{Key: "h", Label: "Height", Type: ParamTypeInt, Value: "32"}, p)

	p, ok = snap.Lookup("p")
	assert.True(t, ok)
	assert.Equal(t, "0.25", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}
