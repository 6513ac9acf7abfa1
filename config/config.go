// Package config loads the editor's YAML settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Panel     PanelConfig     `yaml:"panel"`
	Tileset   TilesetConfig   `yaml:"tileset"`
	Selection SelectionConfig `yaml:"selection"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// PanelConfig describes the right-hand panel the tileset grid lives in.
type PanelConfig struct {
	Width      int       `yaml:"width"`
	Padding    int       `yaml:"padding"`
	Background YAMLColor `yaml:"background"`
}

type TilesetConfig struct {
	// Scale is the on-screen size of one tile cell in pixels.
	Scale float32 `yaml:"scale"`
	// Script is an optional tengo script producing a procedural tileset.
	// When empty the built-in palette is shown.
	Script string `yaml:"script"`
}

type SelectionConfig struct {
	StrokeWidth float32   `yaml:"stroke_width"`
	Color       YAMLColor `yaml:"color"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "tile editor", Width: 960, Height: 640},
		Panel: PanelConfig{
			Width:      240,
			Padding:    8,
			Background: YAMLColor{color.RGBA{40, 40, 40, 255}},
		},
		Tileset: TilesetConfig{Scale: 4},
		Selection: SelectionConfig{
			StrokeWidth: 2,
			Color:       YAMLColor{color.RGBA{255, 220, 80, 255}},
		},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte, name string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Panel.Width <= 0 {
		errs = append(errs, fmt.Errorf("panel width %d must be positive", c.Panel.Width))
	}
	if c.Panel.Padding < 0 || 2*c.Panel.Padding >= c.Panel.Width {
		errs = append(errs, fmt.Errorf("panel padding %d does not fit width %d", c.Panel.Padding, c.Panel.Width))
	}
	if !(c.Tileset.Scale > 0) {
		errs = append(errs, fmt.Errorf("tileset scale %v must be positive", c.Tileset.Scale))
	}
	if c.Selection.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("selection stroke width %v must not be negative", c.Selection.StrokeWidth))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// YAMLColor is a color written as "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"; the leading # is optional.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(h[start:start+2], 16, 8)
		return uint8(v), err
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(h)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color format: %s", s)
		}
		ch[i] = v
	}
	// color.RGBA is alpha-premultiplied.
	a := uint16(ch[3])
	return color.RGBA{
		R: uint8(uint16(ch[0]) * a / 255),
		G: uint8(uint16(ch[1]) * a / 255),
		B: uint8(uint16(ch[2]) * a / 255),
		A: ch[3],
	}, nil
}
