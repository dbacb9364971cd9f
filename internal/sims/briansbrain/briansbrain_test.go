package briansbrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCycle(t *testing.T) {
	b := New(Config{Width: 6, Height: 6, Sparsity: 8})
	g := b.Grid()
	g.Fill(stateDead)
	g.Set(2, 2, stateOn)
	g.Set(3, 2, stateOn)

	b.Step()
	g = b.Grid()
	assert.Equal(t, uint8(stateDying), g.At(2, 2))
	assert.Equal(t, uint8(stateDying), g.At(3, 2))
	// cells touching exactly both firing cells ignite
	assert.Equal(t, uint8(stateOn), g.At(2, 1))
	assert.Equal(t, uint8(stateOn), g.At(3, 3))
	assert.Equal(t, uint8(stateDead), g.At(0, 0))

	b.Step()
	assert.Equal(t, uint8(stateDead), b.Grid().At(2, 2))
}

func TestResetSparsity(t *testing.T) {
	b := New(Config{Width: 10, Height: 10, Sparsity: 1})
	b.Reset(3)
	for _, c := range b.Grid().Cells() {
		assert.Equal(t, uint8(stateOn), c)
	}
}

func TestPaletteCoversStates(t *testing.T) {
	assert.Len(t, New(DefaultConfig()).Palette(), 3)
}

func TestSparsityParameter(t *testing.T) {
	b := New(Config{Width: 4, Height: 3, Sparsity: 8})
	p, ok := b.Parameters().Lookup("sparsity")
	assert.True(t, ok)
	assert.Equal(t, "8", p.Value)

	assert.False(t, b.SetIntParameter("sparsity", 0))
	assert.False(t, b.SetIntParameter("rule", 3))
	assert.True(t, b.SetIntParameter("sparsity", 1))
	p, _ = b.Parameters().Lookup("sparsity")
	assert.Equal(t, "1", p.Value)

	// every cell fires when sparsity is 1
	b.Reset(3)
	for _, v := range b.Grid().Cells() {
		assert.Equal(t, uint8(stateOn), v)
	}
}
