package config

import (
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gridmesh/internal/core"
	"gridmesh/internal/scene"
	"gridmesh/pkg/grid"
	"gridmesh/pkg/mesh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-sim", "briansbrain", "-mode", "fuzzy", "-w", "32", "-z", "0.5", "-frame"}))

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "briansbrain", cfg.Sim)
	assert.Equal(t, scene.ModeFuzzy, cfg.MeshMode())
	assert.Equal(t, 0.5, cfg.Z)
	assert.True(t, cfg.Frame)
	assert.Equal(t, map[string]string{"w": "32"}, cfg.SimOptions())
}

func TestValidate(t *testing.T) {
	require.NoError(t, NewConfig().Validate())

	cases := map[string]func(*Config){
		"empty sim":  func(c *Config) { c.Sim = "" },
		"bad mode":   func(c *Config) { c.Mode = "smooth" },
		"zero scale": func(c *Config) { c.Scale = 0 },
		"zero tps":   func(c *Config) { c.TPS = 0 },
		"neg height": func(c *Config) { c.Height = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  - [0, 0, 0]\n  - [1, 0.5, 0]\n"), 0o644))

	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, []mesh.Color{{0, 0, 0}, {1, 0.5, 0}}, p.Colors)
}

func TestLoadPaletteErrors(t *testing.T) {
	_, err := LoadPalette(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	for _, raw := range []string{
		"colors: [",
		"colors: []",
		"colors:\n  - [1, 1]\n",
		"colors:\n  - [1, 2, 0]\n",
	} {
		_, err := ParsePalette([]byte(raw))
		assert.Error(t, err, raw)
	}
}

type fakeSim struct{ palette []color.RGBA }

func (fakeSim) Name() string              { return "fake" }
func (fakeSim) Size() core.Size           { return core.Size{W: 1, H: 1} }
func (fakeSim) Reset(int64)               {}
func (fakeSim) Step()                     {}
func (fakeSim) Grid() *grid.Grid2D[uint8] { return grid.New2D[uint8](1, 1) }

type paletteSim struct{ fakeSim }

func (s paletteSim) Palette() []color.RGBA { return s.palette }

func TestSceneOptionsPaletteSource(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = "fuzzy"
	cfg.Z = 0.25

	opts, err := cfg.SceneOptions(fakeSim{})
	require.NoError(t, err)
	assert.Equal(t, scene.ModeFuzzy, opts.Mode)
	assert.Equal(t, float32(0.25), opts.Z)
	assert.Len(t, opts.Palette.Colors, 2)

	opts, err = cfg.SceneOptions(paletteSim{fakeSim{palette: []color.RGBA{{}, {}, {R: 255}}}})
	require.NoError(t, err)
	assert.Equal(t, mesh.Color{1, 0, 0}, opts.Palette.Lookup(2))

	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  - [0, 1, 0]\n"), 0o644))
	cfg.PaletteFile = path
	opts, err = cfg.SceneOptions(paletteSim{})
	require.NoError(t, err)
	assert.Equal(t, []mesh.Color{{0, 1, 0}}, opts.Palette.Colors)

	cfg.PaletteFile = path + ".missing"
	_, err = cfg.SceneOptions(fakeSim{})
	assert.Error(t, err)
}
