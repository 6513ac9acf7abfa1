package main

import (
	"context"
	"fmt"
	"time"

	"github.com/milk9111/tileeditor/config"
	"github.com/milk9111/tileeditor/tileset"
	"github.com/milk9111/tileeditor/tilesets"
)

const scriptTimeout = 2 * time.Second

// loadTileset builds the tileset named by cfg: the tengo script when one is
// configured, otherwise the built-in palette. Script paths missing on disk
// resolve to the scripts embedded in the tilesets package.
func loadTileset(cfg config.TilesetConfig) (tileset.Tileset, string, error) {
	if cfg.Script == "" {
		return tileset.DefaultPalette(), "palette", nil
	}
	src, err := tilesets.Load(cfg.Script)
	if err != nil {
		return nil, "", fmt.Errorf("read tileset script: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	ts, err := tileset.FromScript(ctx, cfg.Script, src)
	if err != nil {
		return nil, "", err
	}
	return ts, cfg.Script, nil
}
