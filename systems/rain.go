package systems

import (
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateRain moves every drop down the slant. Drops leaving the bottom are
// recycled above the top edge; none are ever removed.
func UpdateRain(w donburi.World) {
	_, random, _, ok := session(w)
	if !ok {
		return
	}
	components.Rain.Each(w, func(e *donburi.Entry) {
		rain := components.Rain.Get(e)
		for i := range rain.Drops {
			stepDrop(&rain.Drops[i], random)
		}
	})
}

func stepDrop(d *components.RainDrop, random *components.RandomData) {
	d.Y += d.Speed
	d.X += cfg.Rain.Slant
	if d.Y > float64(cfg.C.Height) {
		factory.ResetDrop(d, random.Uniform, false)
	}
	if d.X > float64(cfg.C.Width)+cfg.Rain.WrapMargin {
		d.X = -cfg.Rain.WrapMargin
	}
}
