package tileset

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// PaletteTileSize is the edge size of DefaultPalette tiles.
const PaletteTileSize = 8

var paletteColors = []color.RGBA{
	colornames.Red,
	colornames.Lime,
	colornames.Blue,
	colornames.Magenta,
	colornames.Yellow,
	colornames.Cyan,
	colornames.White,
	colornames.Black,
}

// DefaultPalette returns the placeholder tileset used when nothing else is
// loaded: eight uniform 8x8 tiles of the additive primaries and secondaries
// followed by white and black.
func DefaultPalette() *List {
	tiles := make([]*Tile, 0, len(paletteColors))
	for _, c := range paletteColors {
		t, err := Uniform(PaletteTileSize, c)
		if err != nil {
			panic(err)
		}
		tiles = append(tiles, t)
	}
	l, err := NewList(tiles...)
	if err != nil {
		panic(err)
	}
	return l
}
