package systems

import (
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/yohamta/donburi"
)

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// InputVector turns the held movement actions into a unit direction.
// Opposite directions cancel out to zero.
func InputVector(input *components.InputData) gamemath.Vec2 {
	var v gamemath.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		v.X -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		v.X += 1
	}
	if input.Current[cfg.ActionMoveUp] {
		v.Y -= 1
	}
	if input.Current[cfg.ActionMoveDown] {
		v.Y += 1
	}
	return gamemath.Normalize(v)
}

// UpdateSettings flips the pause and debug toggles. Runs even while paused.
func UpdateSettings(w donburi.World) {
	entry, ok := components.Game.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	settings := components.Settings.Get(entry)

	if GetAction(input, cfg.ActionPause).JustPressed {
		settings.Paused = !settings.Paused
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}
