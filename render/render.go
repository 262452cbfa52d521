package render

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only draw layer; renderers run in registration order.
const LayerDefault ecs.LayerID = 0

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws one snapshot per frame. Capture must be registered before
// every other draw method.
type Renderer struct {
	snap       systems.Snapshot
	background *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Capture copies the world state the rest of the frame draws from.
func (r *Renderer) Capture(e *ecs.ECS, _ *ebiten.Image) {
	r.snap = systems.TakeSnapshot(e.World)
}

func (r *Renderer) fillPath(dst *ebiten.Image, p *vector.Path, clr color.NRGBA) {
	r.vertices, r.indices = p.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.drawTriangles(dst, clr)
}

func (r *Renderer) strokePath(dst *ebiten.Image, p *vector.Path, width float32, clr color.NRGBA) {
	r.vertices, r.indices = p.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	r.drawTriangles(dst, clr)
}

func (r *Renderer) drawTriangles(dst *ebiten.Image, clr color.NRGBA) {
	for i := range r.vertices {
		v := &r.vertices[i]
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = float32(clr.R) / 0xff
		v.ColorG = float32(clr.G) / 0xff
		v.ColorB = float32(clr.B) / 0xff
		v.ColorA = float32(clr.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

// ellipsePath approximates an axis-aligned ellipse with radii rx, ry.
func ellipsePath(cx, cy, rx, ry float64) *vector.Path {
	const segments = 28
	var p vector.Path
	for i := 0; i < segments; i++ {
		a := float64(i) / segments * 2 * math.Pi
		x := float32(cx + math.Cos(a)*rx)
		y := float32(cy + math.Sin(a)*ry)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return &p
}

func roundedRectPath(x, y, w, h, radius float32) *vector.Path {
	var p vector.Path
	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.Arc(x+w-radius, y+radius, radius, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-radius)
	p.Arc(x+w-radius, y+h-radius, radius, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(x+radius, y+h)
	p.Arc(x+radius, y+h-radius, radius, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(x, y+radius)
	p.Arc(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.Close()
	return &p
}

// withAlpha scales the alpha channel of c by f.
func withAlpha(c color.NRGBA, f float64) color.NRGBA {
	a := float64(c.A) * f
	c.A = uint8(math.Max(0, math.Min(255, a)))
	return c
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(gamemath.Lerp(float64(x), float64(y), t))
	}
	return color.NRGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}
