package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/sadblob/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD is the top bar: mood title, control hints and the stolen counter.
type HUD struct {
	UI *ebitenui.UI

	counterLabel *widget.Label
	stolen       int

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace   text.Face
	controlFace text.Face
	counterFace text.Face
}

// NewHUD builds the HUD bar with ebitenui.
func NewHUD() (*HUD, error) {
	h := &HUD{}
	if err := h.loadFonts(); err != nil {
		return nil, err
	}
	h.buildUI()
	return h, nil
}

func (h *HUD) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load hud font: %w", err)
	}

	h.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.TitleSize,
	}
	h.controlFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.ControlSize,
	}
	h.counterFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.CounterSize,
	}
	return nil
}

func (h *HUD) buildUI() {
	// Root container with AnchorLayout to fill the screen; only the bar is visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Palette.HUDBar)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 16, Right: 16, Top: 8, Bottom: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, int(cfg.HUD.Height)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	textColumn := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	textColor := cfg.Palette.HUDText
	textColumn.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.HUD.Title, &h.titleFace, &widget.LabelColor{Idle: textColor}),
	))
	textColumn.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.HUD.Controls, &h.controlFace, &widget.LabelColor{Idle: textColor}),
	))
	bar.AddChild(textColumn)

	h.counterLabel = widget.NewLabel(
		widget.LabelOpts.Text(counterText(0), &h.counterFace, &widget.LabelColor{Idle: textColor}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		)),
	)
	bar.AddChild(h.counterLabel)

	rootContainer.AddChild(bar)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetStolen updates the counter label when the count changed.
func (h *HUD) SetStolen(n int) {
	if n == h.stolen {
		return
	}
	h.stolen = n
	h.counterLabel.Label = counterText(n)
}

// Update calls the UI's Update method
func (h *HUD) Update() {
	h.UI.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

func counterText(n int) string {
	return fmt.Sprintf("Stolen: %d", n)
}
