package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
window:
  title: tiles
panel:
  width: 300
  background: "#102030"
tileset:
  scale: 2.5
  script: gradient.tengo
selection:
  color: "#ff000080"
`)
	cfg, err := Parse(data, "test.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Default()
	if cfg.Window.Title != "tiles" || cfg.Window.Width != def.Window.Width {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Panel.Width != 300 || cfg.Panel.Padding != def.Panel.Padding {
		t.Fatalf("panel = %+v", cfg.Panel)
	}
	if cfg.Panel.Background.RGBA != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Fatalf("panel background = %v", cfg.Panel.Background.RGBA)
	}
	if cfg.Tileset.Scale != 2.5 || cfg.Tileset.Script != "gradient.tengo" {
		t.Fatalf("tileset = %+v", cfg.Tileset)
	}
	if cfg.Selection.StrokeWidth != def.Selection.StrokeWidth {
		t.Fatalf("stroke width = %v, want default", cfg.Selection.StrokeWidth)
	}
	if cfg.Selection.Color.RGBA != (color.RGBA{0x80, 0, 0, 0x80}) {
		t.Fatalf("selection color = %v", cfg.Selection.Color.RGBA)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero_scale", "tileset:\n  scale: 0\n"},
		{"negative_window", "window:\n  width: -1\n"},
		{"padding_too_large", "panel:\n  width: 10\n  padding: 5\n"},
		{"negative_stroke", "selection:\n  stroke_width: -2\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.data), c.name); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse([]byte("selection:\n  color: \"#12\"\n"), "bad"); err == nil {
		t.Fatalf("expected error for short color")
	}
	if _, err := Parse([]byte("selection:\n  color: [1, 2]\n"), "bad"); err == nil {
		t.Fatalf("expected error for non-scalar color")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ffcc00", color.RGBA{255, 204, 0, 255}, false},
		{"00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"#ffffff00", color.RGBA{0, 0, 0, 0}, false},
		{"#zzzzzz", color.RGBA{}, true},
		{"#fff", color.RGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("ParseHexColor(%q) err = %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("ParseHexColor(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", cfg)
	}

	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte("tileset:\n  scale: 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tileset.Scale != 3 {
		t.Fatalf("scale = %v, want 3", cfg.Tileset.Scale)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load missing err = %v, want ErrNotExist", err)
	}
}

func TestWatcherReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "tiles.tengo")
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(watched, []byte("a"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := NewWatcher(watched)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(watched, []byte("b"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case name := <-w.Events:
		want, _ := filepath.Abs(watched)
		if name != want {
			t.Fatalf("event for %s, want %s", name, want)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for watched file")
	}
}
