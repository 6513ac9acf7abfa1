package layout

import "math"

// Point is a position in screen pixels.
type Point struct {
	X, Y float32
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Floor aligns p to whole pixels.
func Floor(p Point) Point {
	return Point{
		X: float32(math.Floor(float64(p.X))),
		Y: float32(math.Floor(float64(p.Y))),
	}
}

// Size is a width and height in screen pixels.
type Size struct {
	Width, Height float32
}

type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Square returns the size x size rect whose top-left corner is p.
func Square(p Point, size float32) Rect {
	return Rect{X: p.X, Y: p.Y, Width: size, Height: size}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether p lies in [X, X+Width) x [Y, Y+Height).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}
