// Package grid is the tileset picker: it lays out a tileset in a wrapping
// grid, turns tiles into rectangle primitives and tracks which tile the
// user clicked.
package grid

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/tileeditor/layout"
	"github.com/milk9111/tileeditor/tileset"
)

var ErrInvalidScale = errors.New("invalid scale")

// Frame is everything the host needs to draw the grid for one frame.
type Frame struct {
	// Size is the space the grid occupies; hosts reserve it in their layout.
	Size    layout.Size
	Cells   []FilledRect
	Outline *StrokedRect
}

// TilesetGrid displays a borrowed Tileset. It owns only the selection.
type TilesetGrid struct {
	tileset     tileset.Tileset
	scale       float32
	strokeWidth float32
	strokeColor color.RGBA
	selection   Selection
}

type Option func(*TilesetGrid)

// WithStroke sets the selection outline width and color.
func WithStroke(width float32, c color.RGBA) Option {
	return func(g *TilesetGrid) {
		g.strokeWidth = width
		g.strokeColor = c
	}
}

// NewTilesetGrid returns a grid drawing each tile cell as a scale x scale
// square.
func NewTilesetGrid(ts tileset.Tileset, scale float32, opts ...Option) (*TilesetGrid, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("grid: scale %v: %w", scale, ErrInvalidScale)
	}
	g := &TilesetGrid{
		tileset:     ts,
		scale:       scale,
		strokeWidth: 2,
		strokeColor: color.RGBA{R: 255, G: 220, B: 80, A: 255},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// SetTileset swaps the displayed tileset and clears the selection.
func (g *TilesetGrid) SetTileset(ts tileset.Tileset) {
	g.tileset = ts
	g.selection.Clear()
}

func (g *TilesetGrid) Tileset() tileset.Tileset {
	return g.tileset
}

func (g *TilesetGrid) Scale() float32 {
	return g.scale
}

// DrawSize is the on-screen edge length of one tile.
func (g *TilesetGrid) DrawSize() float32 {
	if g.tileset == nil {
		return 0
	}
	return float32(g.tileset.TileSize()) * g.scale
}

// Selected returns the selected tile index, if any.
func (g *TilesetGrid) Selected() (int, bool) {
	return g.selection.Selected()
}

// ClearSelection drops the current selection.
func (g *TilesetGrid) ClearSelection() {
	g.selection.Clear()
}

// Show lays the tileset out inside width with its top-left corner at base,
// applies the pointer to the selection and returns the shapes to draw.
// A selection past the end of the current tileset is cleared first.
func (g *TilesetGrid) Show(width float32, base layout.Point, p Pointer) (Frame, error) {
	count := 0
	if g.tileset != nil {
		count = g.tileset.Len()
	}
	if i, ok := g.selection.Selected(); ok && i >= count {
		g.selection.Clear()
	}
	if count == 0 {
		return Frame{}, nil
	}

	base = layout.Floor(base)
	drawSize := g.DrawSize()

	positions := layout.TilePositions(count, drawSize, base, width)
	hit, ok := layout.HitTest(p.Pos, count, drawSize, base, width)
	g.selection.Apply(p, hit, ok)

	tileSize := g.tileset.TileSize()
	frame := Frame{
		Size:  layout.NeededSize(drawSize, width, count),
		Cells: make([]FilledRect, 0, count*tileSize*tileSize),
	}

	it := tileset.NewIterator(g.tileset)
	for it.Next() {
		t := it.Tile()
		if t.Size() != tileSize {
			return Frame{}, fmt.Errorf("grid: tile %d has size %d, want %d: %w", it.Index(), t.Size(), tileSize, tileset.ErrMixedTileSize)
		}
		frame.Cells = append(frame.Cells, TileShapes(t, positions[it.Index()], g.scale)...)
	}
	if err := it.Err(); err != nil {
		return Frame{}, fmt.Errorf("grid: show: %w", err)
	}

	if i, ok := g.selection.Selected(); ok {
		if outline, ok := SelectedTileShape(i, count, drawSize, base, width, g.strokeWidth, g.strokeColor); ok {
			frame.Outline = &outline
		}
	}
	return frame, nil
}
