// Package render draws grid frames with ebiten and reads ebiten input into
// grid pointers.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tileeditor/grid"
	"github.com/milk9111/tileeditor/layout"
)

// DrawFrame paints every cell of f, then the selection outline on top.
func DrawFrame(screen *ebiten.Image, f grid.Frame) {
	for _, c := range f.Cells {
		vector.FillRect(screen, c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height, c.Color, false)
	}
	if f.Outline != nil {
		DrawOutline(screen, *f.Outline)
	}
}

func DrawOutline(screen *ebiten.Image, s grid.StrokedRect) {
	vector.StrokeRect(screen, s.Rect.X, s.Rect.Y, s.Rect.Width, s.Rect.Height, s.StrokeWidth, s.Color, false)
}

// DrawBackground fills the area reserved for a frame.
func DrawBackground(screen *ebiten.Image, base layout.Point, size layout.Size, c color.Color) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	vector.FillRect(screen, base.X, base.Y, size.Width, size.Height, c, false)
}

// PointerFromInput samples the cursor and this frame's mouse button edges.
func PointerFromInput() grid.Pointer {
	mx, my := ebiten.CursorPosition()
	return grid.Pointer{
		Pos:              layout.Point{X: float32(mx), Y: float32(my)},
		Clicked:          inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		SecondaryClicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}
