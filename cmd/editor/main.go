package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tileeditor/config"
)

func main() {
	configPath := flag.String("config", "", "YAML editor config (defaults are used when empty)")
	scale := flag.Float64("scale", 0, "override tileset.scale from the config")
	script := flag.String("script", "", "override tileset.script: tengo script producing the tileset")
	watch := flag.Bool("watch", true, "reload the config and tileset script when they change on disk")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *scale > 0 {
		cfg.Tileset.Scale = float32(*scale)
	}
	if *script != "" {
		cfg.Tileset.Script = *script
	}

	editor, err := NewEditor(cfg, *configPath)
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}
	defer editor.Close()

	if *watch {
		if err := editor.Watch(); err != nil {
			log.Printf("File watching disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
