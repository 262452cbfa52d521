package factory

import (
	"github.com/automoto/sadblob/archetypes"
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/yohamta/donburi"
)

func CreateRain(w donburi.World, u gamemath.Uniform) *donburi.Entry {
	rain := archetypes.Rain.Spawn(w)

	drops := make([]components.RainDrop, cfg.Rain.Count)
	for i := range drops {
		ResetDrop(&drops[i], u, true)
	}
	components.Rain.SetValue(rain, components.RainData{Drops: drops})

	return rain
}

// ResetDrop rolls new parameters for a drop. The first roll may land anywhere
// on screen; later rolls start above the top edge.
func ResetDrop(d *components.RainDrop, u gamemath.Uniform, first bool) {
	d.X = gamemath.RandRange(u, 0, float64(cfg.C.Width))
	if first {
		d.Y = gamemath.RandRange(u, 0, float64(cfg.C.Height))
	} else {
		d.Y = gamemath.RandRange(u, cfg.Rain.RespawnYMin, cfg.Rain.RespawnYMax)
	}
	d.Len = gamemath.RandRange(u, cfg.Rain.LenMin, cfg.Rain.LenMax)
	d.Speed = gamemath.RandRange(u, cfg.Rain.SpeedMin, cfg.Rain.SpeedMax)
	d.Alpha = gamemath.RandRange(u, cfg.Rain.AlphaMin, cfg.Rain.AlphaMax)
}
