package components

import "github.com/yohamta/donburi"

// SettingsData stores session toggles flipped from the keyboard
type SettingsData struct {
	Paused bool
	Debug  bool // draw collision objects and sim stats
}

var Settings = donburi.NewComponentType[SettingsData]()
