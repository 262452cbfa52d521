package systems

import (
	"github.com/automoto/sadblob/components"
	"github.com/yohamta/donburi"
)

// System is one step of the per-frame simulation.
type System func(w donburi.World)

// FrameOrder is the fixed order the simulation advances each frame. The blob
// moves before the notes so their proximity checks see this frame's position.
var FrameOrder = []System{
	UpdateFrame,
	UpdateBlob,
	UpdateNotes,
	UpdateRain,
	UpdateHUD,
}

// Step advances the whole simulation by one frame.
func Step(w donburi.World) {
	for _, s := range FrameOrder {
		s(w)
	}
}

// UpdateFrame advances the session frame counter.
func UpdateFrame(w donburi.World) {
	entry, ok := components.Game.First(w)
	if !ok {
		return
	}
	components.Game.Get(entry).Frame++
}

// WithGameplayChecks wraps a system so it only runs while the session is not paused.
func WithGameplayChecks(s System) System {
	return func(w donburi.World) {
		if IsPaused(w) {
			return
		}
		s(w)
	}
}

// IsPaused reports whether gameplay systems are currently frozen.
func IsPaused(w donburi.World) bool {
	entry, ok := components.Game.First(w)
	if !ok {
		return false
	}
	return components.Settings.Get(entry).Paused
}

// session returns the singleton game entry with its counters and injected randomness.
func session(w donburi.World) (*components.GameData, *components.RandomData, *components.InputData, bool) {
	entry, ok := components.Game.First(w)
	if !ok {
		return nil, nil, nil, false
	}
	return components.Game.Get(entry), components.Random.Get(entry), components.Input.Get(entry), true
}
