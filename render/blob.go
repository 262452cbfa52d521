package render

import (
	"math"

	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawBlob draws the shadow, the wobbling droopy body and the sad face.
func (r *Renderer) DrawBlob(_ *ecs.ECS, screen *ebiten.Image) {
	if !r.snap.HasBlob {
		return
	}
	b := r.snap.Blob
	cx, cy := b.Pos.X, b.Pos.Y

	r.fillPath(screen, ellipsePath(cx+6, cy+22, b.Radius*0.8, b.Radius*0.5), cfg.Palette.BlobShadow)
	r.fillPath(screen, r.blobOutline(b.Pos, b.Radius, b.NoiseSeed), cfg.Palette.BlobBody)

	// eyes
	ex, ey := cfg.Blob.EyeOffsetX, cfg.Blob.EyeOffsetY
	r.fillPath(screen, ellipsePath(cx-ex, cy+ey, 3.5, 6), cfg.Palette.BlobFace)
	r.fillPath(screen, ellipsePath(cx+ex, cy+ey, 3.5, 6), cfg.Palette.BlobFace)

	// tired eyelids
	lid := float32(cy + ey - 4)
	vector.StrokeLine(screen, float32(cx-16), lid, float32(cx-6), lid, 2, cfg.Palette.Eyelid, true)
	vector.StrokeLine(screen, float32(cx+6), lid, float32(cx+16), lid, 2, cfg.Palette.Eyelid, true)

	r.strokePath(screen, mouthPath(cx, cy+12, 11, 7), 3, cfg.Palette.BlobFace)
}

// blobOutline samples the noise field around the body. The bottom sags more
// than the top and the whole shape breathes with the frame counter.
func (r *Renderer) blobOutline(center gamemath.Vec2, radius, seed float64) *vector.Path {
	n := cfg.Blob.Points
	t := float64(r.snap.Frame) * cfg.Blob.ShapeSpeed
	mood := cfg.MoodScale()

	var p vector.Path
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		cos, sin := math.Cos(a), math.Sin(a)

		rad := radius
		if r.snap.Noise != nil {
			v := r.snap.Noise.Eval3(cos*cfg.Blob.Wobble+seed, sin*cfg.Blob.Wobble+seed, t)
			rad += (v - 0.5) * 2 * cfg.Blob.WobbleAmt
		}
		sag := gamemath.Remap(sin, -1, 1, cfg.Blob.SagMin, cfg.Blob.SagMax) * mood

		x := float32(center.X + cos*rad)
		y := float32(center.Y + sin*rad + sag)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return &p
}

// mouthPath is the upper half of an ellipse: a downturned mouth.
func mouthPath(cx, cy, rx, ry float64) *vector.Path {
	const segments = 12
	var p vector.Path
	for i := 0; i <= segments; i++ {
		a := math.Pi + float64(i)/segments*math.Pi
		x := float32(cx + math.Cos(a)*rx)
		y := float32(cy + math.Sin(a)*ry)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return &p
}

// DrawTears draws the falling tears on top of the blob.
func (r *Renderer) DrawTears(_ *ecs.ECS, screen *ebiten.Image) {
	for _, t := range r.snap.Blob.Tears {
		r.fillPath(screen, ellipsePath(t.X, t.Y, cfg.Tear.Width/2, cfg.Tear.Height/2), cfg.Palette.Tear)
	}
}
