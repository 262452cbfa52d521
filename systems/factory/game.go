package factory

import (
	"github.com/automoto/sadblob/archetypes"
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateGame creates the singleton holding counters, randomness, input and HUD state.
func CreateGame(w donburi.World, noise gamemath.Noise, u gamemath.Uniform) *donburi.Entry {
	game := archetypes.Game.Spawn(w)
	components.Random.SetValue(game, components.RandomData{Noise: noise, Uniform: u})
	components.Settings.SetValue(game, components.SettingsData{Debug: cfg.Debug.ShowOverlay})
	return game
}

// CreateWorld populates w with the complete bookshop session: space, shelves,
// blob, notes and rain.
func CreateWorld(w donburi.World, noise gamemath.Noise, u gamemath.Uniform) {
	CreateGame(w, noise, u)
	CreateSpace(w, cfg.C.Width, cfg.C.Height, cfg.Map.CellSize, cfg.Map.CellSize)
	CreateBookshop(w)
	CreateBlob(w, u, cfg.Blob.StartX, cfg.Blob.StartY)
	ScatterNotes(w, u)
	CreateRain(w, u)
}
