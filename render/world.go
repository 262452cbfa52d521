package render

import (
	"math"

	"github.com/automoto/sadblob/assets"
	cfg "github.com/automoto/sadblob/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const dustCount = 220

// DrawBackground draws the gloomy gradient, the drifting window glow, the
// floor line and the dust.
func (r *Renderer) DrawBackground(_ *ecs.ECS, screen *ebiten.Image) {
	if r.background == nil {
		r.background = gradient(cfg.C.Width, cfg.C.Height)
	}
	screen.DrawImage(r.background, nil)

	f := float64(r.snap.Frame)
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	glowX := w*0.15 + math.Sin(f*0.01)*12
	glowY := h*0.18 + math.Cos(f*0.012)*10
	r.fillPath(screen, ellipsePath(glowX, glowY, 160, 110), cfg.Palette.WindowGlow)

	floor := float32(cfg.PlayHeight())
	vector.StrokeLine(screen, 0, floor, float32(w), floor, 1, cfg.Palette.FloorLine, false)

	if r.snap.Noise == nil {
		return
	}
	frame := r.snap.Frame
	for i := 0; i < dustCount; i++ {
		x := (i*17 + frame*2) % cfg.C.Width
		y := (i * 31) % cfg.C.Height
		a := r.snap.Noise.Eval3(float64(x)*0.01, float64(y)*0.01, f*0.01)
		vector.FillRect(screen, float32(x), float32(y), 2, 2, withAlpha(cfg.Palette.Dust, a), false)
	}
}

func gradient(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	for y := 0; y < height; y += 2 {
		t := float64(y) / float64(height)
		c := lerpColor(cfg.Palette.SkyTop, cfg.Palette.SkyBottom, t)
		vector.FillRect(img, 0, float32(y), float32(width), 2, c, false)
	}
	return img
}

// DrawRain draws every drop as a short slanted line, fainter or stronger with the mood.
func (r *Renderer) DrawRain(_ *ecs.ECS, screen *ebiten.Image) {
	mood := cfg.MoodScale()
	for _, d := range r.snap.Rain {
		c := withAlpha(cfg.Palette.Rain, d.Alpha*mood/255)
		vector.StrokeLine(screen,
			float32(d.X), float32(d.Y),
			float32(d.X+cfg.Rain.DriftOffsetX), float32(d.Y+d.Len),
			float32(cfg.Rain.StrokeWidth), c, true)
	}
}

// DrawShelves draws the obstacles with faint shelf lines.
func (r *Renderer) DrawShelves(_ *ecs.ECS, screen *ebiten.Image) {
	for _, s := range r.snap.Shelves {
		r.fillPath(screen, roundedRectPath(float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 10), cfg.Palette.Shelf)

		for yy := s.Y + 20; yy < s.Y+s.H; yy += 38 {
			vector.StrokeLine(screen, float32(s.X+6), float32(yy), float32(s.X+s.W-6), float32(yy), 1, cfg.Palette.ShelfLine, false)
		}
	}
}

// DrawNotes draws every note as a small card with two lines of writing.
func (r *Renderer) DrawNotes(_ *ecs.ECS, screen *ebiten.Image) {
	rad := cfg.Note.Radius
	for _, n := range r.snap.Notes {
		c := cfg.Palette.NoteIdle
		if n.Carried {
			c = cfg.Palette.NoteCarried
		}
		x, y := n.Pos.X, n.Pos.Y
		r.fillPath(screen, roundedRectPath(float32(x-rad), float32(y-rad), float32(rad*2), float32(rad*2), 4), c)

		vector.StrokeLine(screen, float32(x-7), float32(y-3), float32(x+7), float32(y-3), 2, cfg.Palette.NoteInk, true)
		vector.StrokeLine(screen, float32(x-7), float32(y+3), float32(x+4), float32(y+3), 2, cfg.Palette.NoteInk, true)
	}
}

// DrawVignette darkens the screen edges. Skipped when the shader failed to load.
func (r *Renderer) DrawVignette(_ *ecs.ECS, screen *ebiten.Image) {
	if assets.VignetteShader == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Size":     []float32{float32(w), float32(h)},
		"Strength": float32(cfg.Mood.Vignette * cfg.MoodScale()),
	}
	screen.DrawRectShader(w, h, assets.VignetteShader, op)
}
