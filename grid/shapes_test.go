package grid

import (
	"image/color"
	"testing"

	"github.com/milk9111/tileeditor/layout"
	"github.com/milk9111/tileeditor/tileset"
	"golang.org/x/image/colornames"
)

func TestTileShapes(t *testing.T) {
	tile, err := tileset.NewTile(2, []color.RGBA{colornames.Lime, colornames.Blue, colornames.Red, colornames.Black})
	if err != nil {
		t.Fatalf("NewTile: %v", err)
	}

	shapes := TileShapes(tile, layout.Point{X: 10, Y: 20}, 3)
	want := []FilledRect{
		{layout.Rect{X: 10, Y: 20, Width: 3, Height: 3}, colornames.Lime},
		{layout.Rect{X: 10, Y: 23, Width: 3, Height: 3}, colornames.Red},
		{layout.Rect{X: 13, Y: 20, Width: 3, Height: 3}, colornames.Blue},
		{layout.Rect{X: 13, Y: 23, Width: 3, Height: 3}, colornames.Black},
	}
	if len(shapes) != len(want) {
		t.Fatalf("got %d shapes, want %d", len(shapes), len(want))
	}
	for i := range want {
		if shapes[i] != want[i] {
			t.Errorf("shape %d = %+v, want %+v", i, shapes[i], want[i])
		}
	}
}

func TestSelectedTileShape(t *testing.T) {
	base := layout.Point{X: 4, Y: 4}
	outline, ok := SelectedTileShape(5, 8, 8, base, 40, 2, colornames.Yellow)
	if !ok {
		t.Fatalf("SelectedTileShape(5) not ok")
	}
	want := StrokedRect{Rect: layout.Rect{X: 4, Y: 12, Width: 8, Height: 8}, StrokeWidth: 2, Color: colornames.Yellow}
	if outline != want {
		t.Fatalf("outline = %+v, want %+v", outline, want)
	}

	if _, ok := SelectedTileShape(8, 8, 8, base, 40, 2, colornames.Yellow); ok {
		t.Fatalf("SelectedTileShape past the end should fail")
	}
}
