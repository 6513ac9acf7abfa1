package tileset

import (
	"context"
	"fmt"
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// The script must define tile_size, count and pixel(index, x, y). The driver
// below is appended to it and collects every cell in row-major order.
const scriptDriver = `
__tiles := []
for __i := 0; __i < count; __i++ {
	__cells := []
	for __y := 0; __y < tile_size; __y++ {
		for __x := 0; __x < tile_size; __x++ {
			__cells = append(__cells, pixel(__i, __x, __y))
		}
	}
	__tiles = append(__tiles, __cells)
}
`

// FromScript builds a procedural tileset by running a tengo script. pixel
// returns [r, g, b] or [r, g, b, a] with channels in 0..255.
//
//	tile_size := 8
//	count := 4
//	pixel := func(i, x, y) { return [i * 64, x * 32, y * 32] }
func FromScript(ctx context.Context, name string, src []byte) (*List, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDriver))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("tileset: script %s: %w", name, err)
	}

	size := compiled.Get("tile_size").Int()
	if size <= 0 {
		return nil, fmt.Errorf("tileset: script %s: tile_size %d: %w", name, size, ErrInvalidTile)
	}

	raw := compiled.Get("__tiles").Array()
	tiles := make([]*Tile, 0, len(raw))
	for i, rt := range raw {
		rawCells, ok := rt.([]any)
		if !ok || len(rawCells) != size*size {
			return nil, fmt.Errorf("tileset: script %s: tile %d: %w", name, i, ErrInvalidTile)
		}
		cells := make([]color.RGBA, len(rawCells))
		for j, rc := range rawCells {
			c, err := scriptColor(rc)
			if err != nil {
				return nil, fmt.Errorf("tileset: script %s: tile %d cell %d: %w", name, i, j, err)
			}
			cells[j] = c
		}
		tiles = append(tiles, &Tile{size: size, cells: cells})
	}
	return NewList(tiles...)
}

func scriptColor(v any) (color.RGBA, error) {
	parts, ok := v.([]any)
	if !ok || (len(parts) != 3 && len(parts) != 4) {
		return color.RGBA{}, fmt.Errorf("pixel must return [r, g, b] or [r, g, b, a], got %v", v)
	}
	ch := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		n, err := scriptChannel(p)
		if err != nil {
			return color.RGBA{}, err
		}
		ch[i] = n
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func scriptChannel(v any) (uint8, error) {
	var n int64
	switch t := v.(type) {
	case int64:
		n = t
	case float64:
		n = int64(t)
	default:
		return 0, fmt.Errorf("channel must be a number, got %v", v)
	}
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("channel %d outside 0..255", n)
	}
	return uint8(n), nil
}
