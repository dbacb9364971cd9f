package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gridmesh/internal/core"
	"gridmesh/internal/palette"
	"gridmesh/internal/scene"
	"gridmesh/pkg/mesh"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Sim         string
	Mode        string
	Scale       int
	TPS         int
	Seed        int64
	Z           float64
	Width       int
	Height      int
	Frame       bool
	PaletteFile string
}

// NewConfig returns a Config populated with sensible defaults. Zero Width and
// Height keep the sim's own defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Mode: scene.ModeHard.String(), Scale: 4, TPS: 15, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Mode, "mode", c.Mode, "grid meshing: hard or fuzzy")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Z, "z", c.Z, "depth of the emitted grid plane")
	fs.IntVar(&c.Width, "w", c.Width, "grid width override")
	fs.IntVar(&c.Height, "h", c.Height, "grid height override")
	fs.BoolVar(&c.Frame, "frame", c.Frame, "draw a border around the grid")
	fs.StringVar(&c.PaletteFile, "palette", c.PaletteFile, "YAML palette file")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return errors.New("config: sim must not be empty")
	}
	if _, err := scene.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: negative grid size %dx%d", c.Width, c.Height)
	}
	return nil
}

// MeshMode returns the parsed meshing mode. Call Validate first.
func (c *Config) MeshMode() scene.Mode {
	m, _ := scene.ParseMode(c.Mode)
	return m
}

// SimOptions returns the flag-style map passed to sim factories.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	return opts
}

// SceneOptions builds meshing options for sim. The palette comes from
// PaletteFile when set, then from the sim itself, then the default.
func (c *Config) SceneOptions(sim core.Sim) (scene.Options, error) {
	opts := scene.DefaultOptions()
	opts.Mode = c.MeshMode()
	opts.Z = float32(c.Z)
	opts.Frame = c.Frame
	if c.PaletteFile != "" {
		p, err := LoadPalette(c.PaletteFile)
		if err != nil {
			return opts, err
		}
		opts.Palette = p
	} else if pp, ok := sim.(core.PaletteProvider); ok {
		opts.Palette = palette.FromRGBA(pp.Palette())
	}
	return opts, nil
}

type paletteFile struct {
	Colors [][]float32 `yaml:"colors"`
}

// LoadPalette reads a YAML palette of the form
//
//	colors:
//	  - [0, 0, 0]
//	  - [1, 0.5, 0]
//
// where every channel lies in [0, 1].
func LoadPalette(path string) (palette.Palette, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("read palette: %w", err)
	}
	return ParsePalette(raw)
}

// ParsePalette decodes the YAML palette format accepted by LoadPalette.
func ParsePalette(raw []byte) (palette.Palette, error) {
	var pf paletteFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return palette.Palette{}, fmt.Errorf("parse palette: %w", err)
	}
	if len(pf.Colors) == 0 {
		return palette.Palette{}, errors.New("parse palette: no colors")
	}
	p := palette.Palette{Colors: make([]mesh.Color, len(pf.Colors))}
	for i, c := range pf.Colors {
		if len(c) != 3 {
			return palette.Palette{}, fmt.Errorf("parse palette: color %d has %d channels, want 3", i, len(c))
		}
		for _, ch := range c {
			if ch < 0 || ch > 1 {
				return palette.Palette{}, fmt.Errorf("parse palette: color %d channel %v outside [0, 1]", i, ch)
			}
		}
		p.Colors[i] = mesh.Color{c[0], c[1], c[2]}
	}
	return p, nil
}
