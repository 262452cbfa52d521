package factory

import (
	"github.com/automoto/sadblob/archetypes"
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateBlob(w donburi.World, u gamemath.Uniform, x, y float64) *donburi.Entry {
	blob := archetypes.Blob.Spawn(w)

	r := cfg.Blob.Radius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvBlob)
	obj.SetShape(resolv.NewRectangle(0, 0, r*2, r*2))
	obj.Data = blob
	components.Object.SetValue(blob, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Blob.SetValue(blob, components.BlobData{
		Pos:       gamemath.V(x, y),
		Radius:    r,
		NoiseSeed: gamemath.RandRange(u, 0, cfg.Blob.NoiseSeedMax),
	})

	return blob
}

// NewTear spawns a tear under a random eye of a blob centered at (bx, by).
func NewTear(u gamemath.Uniform, bx, by float64) components.Tear {
	side := 1.0
	if u.Float64() < 0.5 {
		side = -1
	}
	return components.Tear{
		X:    bx + side*cfg.Blob.EyeOffsetX,
		Y:    by - cfg.Blob.TearSpawnLift,
		VY:   gamemath.RandRange(u, cfg.Tear.SpeedMin, cfg.Tear.SpeedMax),
		Life: cfg.Tear.Life,
		Side: side,
	}
}
