package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/tileeditor/tileset"
	"golang.design/x/clipboard"
)

// initClipboard reports whether the system clipboard can be used.
func initClipboard() bool {
	return clipboard.Init() == nil
}

func copyTile(index int, t *tileset.Tile) {
	clipboard.Write(clipboard.FmtText, []byte(describeTile(index, t)))
}

// describeTile renders a tile as one line of #rrggbbaa cells per row.
func describeTile(index int, t *tileset.Tile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tile %d (%dx%d)\n", index, t.Size(), t.Size())
	for y := 0; y < t.Size(); y++ {
		for x := 0; x < t.Size(); x++ {
			c := t.MustAt(x, y)
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
