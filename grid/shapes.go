package grid

import (
	"image/color"

	"github.com/milk9111/tileeditor/layout"
	"github.com/milk9111/tileeditor/tileset"
)

// FilledRect is a solid axis-aligned rectangle.
type FilledRect struct {
	Rect  layout.Rect
	Color color.RGBA
}

// StrokedRect is an outlined axis-aligned rectangle.
type StrokedRect struct {
	Rect        layout.Rect
	StrokeWidth float32
	Color       color.RGBA
}

// TileShapes returns one scale x scale square per cell of t, with the
// tile's top-left corner at pos. Cells are emitted column by column.
func TileShapes(t *tileset.Tile, pos layout.Point, scale float32) []FilledRect {
	size := t.Size()
	shapes := make([]FilledRect, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			p := pos.Add(float32(x)*scale, float32(y)*scale)
			shapes = append(shapes, FilledRect{
				Rect:  layout.Square(p, scale),
				Color: t.MustAt(x, y),
			})
		}
	}
	return shapes
}

// SelectedTileShape outlines tile index using the same placement as
// layout.TilePositions. It returns false when index is not a tile.
func SelectedTileShape(index, count int, drawSize float32, base layout.Point, maxWidth, strokeWidth float32, c color.RGBA) (StrokedRect, bool) {
	r, ok := layout.TileRect(index, count, drawSize, base, maxWidth)
	if !ok {
		return StrokedRect{}, false
	}
	return StrokedRect{Rect: r, StrokeWidth: strokeWidth, Color: c}, true
}
