package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tileeditor/config"
	"golang.org/x/image/font/gofont/goregular"
)

const menuBarHeight = 36

// EditorUI is the widget tree plus the pieces the editor updates each frame.
type EditorUI struct {
	UI      *ebitenui.UI
	Tileset *TilesetPanelUI
	status  *widget.Text
}

func (u *EditorUI) SetStatus(s string) {
	if u == nil || u.status == nil {
		return
	}
	u.status.Label = s
}

func BuildEditorUI(
	cfg config.Config,
	onOpen func(),
	onReload func(),
	onDeselect func(),
) (*EditorUI, error) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace, cfg.Panel.Background.RGBA)

	menuBar := buildMenuBar(ui.PrimaryTheme, &fontFace, onOpen, onReload, onDeselect)
	rightPanel := buildTilesetPanelUI(cfg.Panel, ui.PrimaryTheme, &fontFace)

	status := widget.NewText(
		widget.TextOpts.Text("No tile selected", &fontFace, color.White),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	menuBar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  true,
	}
	rightPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	status.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	root.AddChild(rightPanel.Container)
	root.AddChild(menuBar)
	root.AddChild(status)
	ui.Container = root

	return &EditorUI{UI: ui, Tileset: rightPanel, status: status}, nil
}

// buildMenuBar lays out the top row of buttons. Open is a placeholder until
// tilesets can be loaded from disk.
func buildMenuBar(theme *widget.Theme, fontFace *text.Face, onOpen, onReload, onDeselect func()) *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, menuBarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	entries := []struct {
		label   string
		onClick func()
	}{
		{"Open...", onOpen},
		{"Reload", onReload},
		{"Deselect", onDeselect},
	}
	for _, e := range entries {
		onClick := e.onClick
		bar.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(e.label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(72, menuBarHeight-8),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}
	return bar
}
