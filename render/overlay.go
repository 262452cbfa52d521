package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/fonts"
	"github.com/automoto/sadblob/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	popWidth  = 120
	popHeight = 28
	popMargin = 6
)

// DrawPop flashes a glow behind the stolen counter right after a steal.
func (r *Renderer) DrawPop(_ *ecs.ECS, screen *ebiten.Image) {
	if r.snap.Pop <= 0 {
		return
	}
	x := float32(cfg.C.Width - popWidth - popMargin)
	c := withAlpha(cfg.Palette.Pop, float64(r.snap.Pop))
	vector.FillRect(screen, x, popMargin, popWidth, popHeight, c, false)
}

// DrawPause renders the pause overlay.
func (r *Renderer) DrawPause(_ *ecs.ECS, screen *ebiten.Image) {
	if !r.snap.Paused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Palette.Overlay, false)

	title := "PAUSED"
	titleFont := fonts.Bold.Get()
	bounds := text.BoundString(titleFont, title)
	text.Draw(screen, title, titleFont, (width-bounds.Dx())/2, height/2, cfg.Palette.HUDText)

	hint := "P / Esc: Resume   F1: Debug overlay"
	hintFont := fonts.Small.Get()
	bounds = text.BoundString(hintFont, hint)
	text.Draw(screen, hint, hintFont, (width-bounds.Dx())/2, height/2+30, cfg.Palette.HUDText)
}

// DrawDebug outlines every collision object and prints the blob's state.
func (r *Renderer) DrawDebug(_ *ecs.ECS, screen *ebiten.Image) {
	if !r.snap.Debug {
		return
	}

	for _, b := range r.snap.Boxes {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch b.Tag {
		case tags.ResolvSolid:
			c = color.RGBA{100, 100, 100, 255} // Grey
		case tags.ResolvBlob:
			c = color.RGBA{0, 0, 255, 255} // Blue
		case tags.ResolvNote:
			c = color.RGBA{255, 220, 0, 255} // Yellow
		}

		x, y := float32(b.Bounds.X), float32(b.Bounds.Y)
		w, h := float32(b.Bounds.W), float32(b.Bounds.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	carried := 0
	for _, n := range r.snap.Notes {
		if n.Carried {
			carried++
		}
	}
	b := r.snap.Blob
	info := fmt.Sprintf("frame %d  pos %.1f,%.1f  vel %.2f,%.2f  idle %v  tears %d  carried %d/%d",
		r.snap.Frame, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Idle, len(b.Tears), carried, len(r.snap.Notes))
	text.Draw(screen, info, fonts.Small.Get(), 8, int(cfg.HUD.Height)+16, cfg.Palette.HUDText)
}
