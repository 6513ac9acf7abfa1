package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tileeditor/config"
	"github.com/milk9111/tileeditor/grid"
	"github.com/milk9111/tileeditor/layout"
	"github.com/milk9111/tileeditor/render"
)

var backgroundColor = color.RGBA{24, 24, 28, 255}

// Editor is the ebiten game hosting the tileset picker.
type Editor struct {
	cfg         config.Config
	configPath  string
	ui          *EditorUI
	grid        *grid.TilesetGrid
	tilesetName string
	watcher     *config.Watcher
	clipboardOK bool

	// last computed frame, drawn in Draw
	frame    grid.Frame
	gridBase layout.Point
	showErr  error
}

func NewEditor(cfg config.Config, configPath string) (*Editor, error) {
	ts, name, err := loadTileset(cfg.Tileset)
	if err != nil {
		return nil, err
	}
	g, err := grid.NewTilesetGrid(ts, cfg.Tileset.Scale,
		grid.WithStroke(cfg.Selection.StrokeWidth, cfg.Selection.Color.RGBA))
	if err != nil {
		return nil, err
	}

	e := &Editor{
		cfg:         cfg,
		configPath:  configPath,
		grid:        g,
		tilesetName: name,
	}

	ui, err := BuildEditorUI(cfg, e.openTileset, e.reloadTileset, e.grid.ClearSelection)
	if err != nil {
		return nil, err
	}
	e.ui = ui
	e.ui.Tileset.SetTitle(e.tilesetTitle())

	e.clipboardOK = initClipboard()
	if !e.clipboardOK {
		log.Printf("Clipboard unavailable; Ctrl+C copy disabled")
	}
	log.Printf("Tileset loaded: %s (%d tiles)", name, ts.Len())
	return e, nil
}

// Watch starts reloading the config file and tileset script on change.
func (e *Editor) Watch() error {
	files := []string{e.configPath, e.cfg.Tileset.Script}
	if e.configPath == "" && e.cfg.Tileset.Script == "" {
		return nil
	}
	w, err := config.NewWatcher(files...)
	if err != nil {
		return err
	}
	e.watcher = w
	return nil
}

func (e *Editor) Close() {
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			log.Printf("Failed to close watcher: %v", err)
		}
	}
}

func (e *Editor) tilesetTitle() string {
	return fmt.Sprintf("Tileset: %s", filepath.Base(e.tilesetName))
}

func (e *Editor) openTileset() {
	log.Printf("Open tileset: not implemented")
}

func (e *Editor) reloadTileset() {
	ts, name, err := loadTileset(e.cfg.Tileset)
	if err != nil {
		log.Printf("Failed to reload tileset: %v", err)
		return
	}
	e.grid.SetTileset(ts)
	e.tilesetName = name
	e.showErr = nil
	e.ui.Tileset.SetTitle(e.tilesetTitle())
	log.Printf("Tileset reloaded: %s (%d tiles)", name, ts.Len())
}

func (e *Editor) reloadConfig() {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		log.Printf("Failed to reload config: %v", err)
		return
	}
	// Scale and stroke are fixed for the life of the grid; only the tileset
	// source is picked up live.
	if cfg.Tileset.Script != e.cfg.Tileset.Script && e.watcher != nil {
		if err := e.watcher.Add(cfg.Tileset.Script); err != nil {
			log.Printf("Failed to watch %s: %v", cfg.Tileset.Script, err)
		}
	}
	e.cfg.Tileset.Script = cfg.Tileset.Script
	e.reloadTileset()
}

// drainWatcher applies pending file changes without blocking the frame.
func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	configAbs, _ := filepath.Abs(e.configPath)
	for {
		select {
		case name, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			if e.configPath != "" && name == configAbs {
				e.reloadConfig()
			} else {
				e.reloadTileset()
			}
		case err, ok := <-e.watcher.Errors:
			if !ok {
				e.watcher = nil
				return
			}
			log.Printf("Watch error: %v", err)
		default:
			return
		}
	}
}

func (e *Editor) copySelected() {
	i, ok := e.grid.Selected()
	if !ok || !e.clipboardOK {
		return
	}
	t, err := e.grid.Tileset().Get(i)
	if err != nil {
		log.Printf("Copy failed: %v", err)
		return
	}
	copyTile(i, t)
	log.Printf("Copied tile %d to clipboard", i)
}

func (e *Editor) Update() error {
	e.ui.UI.Update()
	e.drainWatcher()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.copySelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.grid.ClearSelection()
	}

	base, width := e.ui.Tileset.Area()
	frame, err := e.grid.Show(width, base, render.PointerFromInput())
	if err != nil {
		if e.showErr == nil {
			log.Printf("Tileset display failed: %v", err)
		}
		e.showErr = err
		e.frame = grid.Frame{}
	} else {
		e.frame = frame
	}
	e.gridBase = layout.Floor(base)

	if i, ok := e.grid.Selected(); ok {
		e.ui.SetStatus(fmt.Sprintf("Selected tile %d", i))
	} else {
		e.ui.SetStatus("No tile selected")
	}
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	e.ui.UI.Draw(screen)
	render.DrawBackground(screen, e.gridBase, e.frame.Size, color.Black)
	render.DrawFrame(screen, e.frame)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
