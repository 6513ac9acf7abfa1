package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tileeditor/config"
	"github.com/milk9111/tileeditor/layout"
)

// TilesetPanelUI is the right-hand panel. The ebitenui tree only reserves
// GridArea; the tiles themselves are drawn by the render package.
type TilesetPanelUI struct {
	Container *widget.Container
	GridArea  *widget.Container
	title     *widget.Text
}

func buildTilesetPanelUI(cfg config.PanelConfig, theme *widget.Theme, fontFace *text.Face) *TilesetPanelUI {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Width, 0),
		),
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{
					Top:    menuBarHeight + cfg.Padding,
					Bottom: cfg.Padding,
					Left:   cfg.Padding,
					Right:  cfg.Padding,
				}),
			),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text("Tileset", fontFace, color.White),
	)
	panel.AddChild(title)

	gridArea := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			widget.WidgetOpts.MinSize(cfg.Width-2*cfg.Padding, 0),
		),
	)
	panel.AddChild(gridArea)

	return &TilesetPanelUI{Container: panel, GridArea: gridArea, title: title}
}

func (p *TilesetPanelUI) SetTitle(s string) {
	if p == nil || p.title == nil {
		return
	}
	p.title.Label = s
}

// Area returns the origin and width available to the tileset grid.
func (p *TilesetPanelUI) Area() (layout.Point, float32) {
	r := p.GridArea.GetWidget().Rect
	return layout.Point{X: float32(r.Min.X), Y: float32(r.Min.Y)}, float32(r.Dx())
}
