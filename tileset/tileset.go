package tileset

import (
	"fmt"
	"iter"
)

// Tileset is an ordered collection of tiles that all share one edge size.
type Tileset interface {
	// Len returns the number of tiles.
	Len() int
	// TileSize returns the edge length shared by every tile.
	TileSize() int
	// Get returns the tile at index i.
	Get(i int) (*Tile, error)
}

// Iterator walks a Tileset from index 0. A new Iterator always starts over.
//
//	it := tileset.NewIterator(ts)
//	for it.Next() {
//		use(it.Index(), it.Tile())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator struct {
	ts   Tileset
	next int
	cur  *Tile
	err  error
}

func NewIterator(ts Tileset) *Iterator {
	return &Iterator{ts: ts}
}

// Next advances to the next tile and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.err != nil || it.ts == nil || it.next >= it.ts.Len() {
		it.cur = nil
		return false
	}
	t, err := it.ts.Get(it.next)
	if err != nil {
		it.err = err
		it.cur = nil
		return false
	}
	it.cur = t
	it.next++
	return true
}

// Tile returns the current tile.
func (it *Iterator) Tile() *Tile {
	return it.cur
}

// Index returns the index of the current tile.
func (it *Iterator) Index() int {
	return it.next - 1
}

// Err returns the first error returned by the underlying Get, if any.
func (it *Iterator) Err() error {
	return it.err
}

// All yields every tile of ts with its index. Iteration stops silently on a
// Get error; use an Iterator when the error matters.
func All(ts Tileset) iter.Seq2[int, *Tile] {
	return func(yield func(int, *Tile) bool) {
		it := NewIterator(ts)
		for it.Next() {
			if !yield(it.Index(), it.Tile()) {
				return
			}
		}
	}
}

// List is a slice-backed Tileset.
type List struct {
	size  int
	tiles []*Tile
}

// NewList builds a List from tiles, which must all have the same edge size.
// An empty list has tile size 0.
func NewList(tiles ...*Tile) (*List, error) {
	l := &List{tiles: make([]*Tile, 0, len(tiles))}
	for i, t := range tiles {
		if t == nil {
			return nil, fmt.Errorf("tileset: list tile %d is nil: %w", i, ErrInvalidTile)
		}
		if i == 0 {
			l.size = t.Size()
		} else if t.Size() != l.size {
			return nil, fmt.Errorf("tileset: list tile %d has size %d, want %d: %w", i, t.Size(), l.size, ErrMixedTileSize)
		}
		l.tiles = append(l.tiles, t)
	}
	return l, nil
}

func (l *List) Len() int { return len(l.tiles) }

func (l *List) TileSize() int { return l.size }

func (l *List) Get(i int) (*Tile, error) {
	if i < 0 || i >= len(l.tiles) {
		return nil, fmt.Errorf("tileset: get %d (len %d): %w", i, len(l.tiles), ErrOutOfRange)
	}
	return l.tiles[i], nil
}
