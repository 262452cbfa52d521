package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData animates the stolen counter highlight.
type HUDData struct {
	Pop        *gween.Tween // nil until the first steal
	PopValue   float32      // current highlight strength (0 = none)
	LastStolen int
}

var HUD = donburi.NewComponentType[HUDData]()
