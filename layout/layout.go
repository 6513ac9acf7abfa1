// Package layout places equally sized square tiles left to right in rows,
// starting a new row when the next tile would make the row wider than the
// container.
package layout

import "math"

// TilesPerRow returns how many tiles of drawSize fit side by side in
// maxWidth, where a tile whose right edge lands exactly on maxWidth still
// fits. At least one tile is placed per row even when it is wider than the
// container. A non-positive drawSize yields 0.
func TilesPerRow(drawSize, maxWidth float32) int {
	if !(drawSize > 0) {
		return 0
	}
	if !(maxWidth >= drawSize) {
		return 1
	}
	q := float64(maxWidth) / float64(drawSize)
	if q >= math.MaxInt32 {
		return math.MaxInt32
	}
	n := int(q)
	// The quotient can land one off the float32 running-width comparison in
	// either direction; settle on the count that comparison produces.
	if n > 1 && float32(n)*drawSize > maxWidth {
		n--
	}
	if float32(n+1)*drawSize <= maxWidth {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// NeededSize returns the smallest box holding count tiles of drawSize
// wrapped at maxWidth.
func NeededSize(drawSize, maxWidth float32, count int) Size {
	perRow := TilesPerRow(drawSize, maxWidth)
	if count <= 0 || perRow == 0 {
		return Size{}
	}
	cols := min(perRow, count)
	rows := (count-1)/perRow + 1
	return Size{
		Width:  float32(cols) * drawSize,
		Height: float32(rows) * drawSize,
	}
}

// TilePositions returns the top-left corner of each of count tiles. The
// cursor starts at base, moves right by drawSize per tile, and returns to
// base.X one row lower whenever the next tile would overflow maxWidth.
func TilePositions(count int, drawSize float32, base Point, maxWidth float32) []Point {
	perRow := TilesPerRow(drawSize, maxWidth)
	if count <= 0 || perRow == 0 {
		return nil
	}

	positions := make([]Point, 0, count)
	row, col := 0, 0
	for i := 0; i < count; i++ {
		if col == perRow {
			row++
			col = 0
		}
		positions = append(positions, cell(row, col, drawSize, base))
		col++
	}
	return positions
}

// cell is computed from the row and column rather than accumulated so that
// every caller gets bit-identical positions.
func cell(row, col int, drawSize float32, base Point) Point {
	return base.Add(float32(col)*drawSize, float32(row)*drawSize)
}

// TileRect returns the rectangle of tile i, or false when i is not a valid
// index for count tiles.
func TileRect(i, count int, drawSize float32, base Point, maxWidth float32) (Rect, bool) {
	perRow := TilesPerRow(drawSize, maxWidth)
	if i < 0 || i >= count || perRow == 0 {
		return Rect{}, false
	}
	return Square(cell(i/perRow, i%perRow, drawSize, base), drawSize), true
}

// HitTest returns the index of the tile whose rectangle contains p.
func HitTest(p Point, count int, drawSize float32, base Point, maxWidth float32) (int, bool) {
	for i, pos := range TilePositions(count, drawSize, base, maxWidth) {
		if Square(pos, drawSize).Contains(p) {
			return i, true
		}
	}
	return -1, false
}
