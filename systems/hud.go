package systems

import (
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateHUD restarts the counter highlight on every new steal and eases it out.
func UpdateHUD(w donburi.World) {
	entry, ok := components.Game.First(w)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	hud := components.HUD.Get(entry)

	if game.Stolen > hud.LastStolen {
		hud.LastStolen = game.Stolen
		hud.Pop = gween.New(cfg.HUD.PopScale, 0, cfg.HUD.PopDuration, ease.OutQuad)
	}

	if hud.Pop == nil {
		return
	}
	v, finished := hud.Pop.Update(1 / float32(cfg.C.TPS))
	hud.PopValue = v
	if finished {
		hud.Pop = nil
		hud.PopValue = 0
	}
}
