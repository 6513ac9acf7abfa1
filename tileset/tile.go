package tileset

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrInvalidTile   = errors.New("invalid tile")
	ErrOutOfRange    = errors.New("out of range")
	ErrMixedTileSize = errors.New("mixed tile sizes")
)

// Tile is a square grid of colored cells stored row-major. Tiles are
// immutable once constructed.
type Tile struct {
	size  int
	cells []color.RGBA
}

// NewTile copies cells into a new tile of the given edge size. len(cells)
// must be exactly size*size.
func NewTile(size int, cells []color.RGBA) (*Tile, error) {
	if size <= 0 {
		return nil, fmt.Errorf("tileset: new tile size %d: %w", size, ErrInvalidTile)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("tileset: new tile %dx%d with %d cells: %w", size, size, len(cells), ErrInvalidTile)
	}
	c := make([]color.RGBA, len(cells))
	copy(c, cells)
	return &Tile{size: size, cells: c}, nil
}

// Uniform returns a size x size tile filled with a single color.
func Uniform(size int, c color.RGBA) (*Tile, error) {
	if size <= 0 {
		return nil, fmt.Errorf("tileset: uniform tile size %d: %w", size, ErrInvalidTile)
	}
	cells := make([]color.RGBA, size*size)
	for i := range cells {
		cells[i] = c
	}
	return &Tile{size: size, cells: cells}, nil
}

// Size returns the edge length of the tile.
func (t *Tile) Size() int {
	return t.size
}

// At returns the color of the cell at (x, y).
func (t *Tile) At(x, y int) (color.RGBA, error) {
	if x < 0 || x >= t.size {
		return color.RGBA{}, fmt.Errorf("tileset: tile x %d (size %d): %w", x, t.size, ErrOutOfRange)
	}
	if y < 0 || y >= t.size {
		return color.RGBA{}, fmt.Errorf("tileset: tile y %d (size %d): %w", y, t.size, ErrOutOfRange)
	}
	return t.cells[x+t.size*y], nil
}

// MustAt is like At but panics when (x, y) lies outside the tile.
func (t *Tile) MustAt(x, y int) color.RGBA {
	c, err := t.At(x, y)
	if err != nil {
		panic(err)
	}
	return c
}
