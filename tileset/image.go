package tileset

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage slices an already decoded sheet into tileSize x tileSize tiles,
// left to right then top to bottom. Partial tiles on the right and bottom
// edges are dropped.
func FromImage(img image.Image, tileSize int) (*List, error) {
	if img == nil {
		return nil, fmt.Errorf("tileset: from image: nil image: %w", ErrInvalidTile)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tileset: from image: tile size %d: %w", tileSize, ErrInvalidTile)
	}

	b := img.Bounds()
	cols := b.Dx() / tileSize
	rows := b.Dy() / tileSize

	tiles := make([]*Tile, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			cells := make([]color.RGBA, tileSize*tileSize)
			ox := b.Min.X + tx*tileSize
			oy := b.Min.Y + ty*tileSize
			for y := 0; y < tileSize; y++ {
				for x := 0; x < tileSize; x++ {
					cells[x+tileSize*y] = color.RGBAModel.Convert(img.At(ox+x, oy+y)).(color.RGBA)
				}
			}
			tiles = append(tiles, &Tile{size: tileSize, cells: cells})
		}
	}
	return NewList(tiles...)
}
