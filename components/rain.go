package components

import "github.com/yohamta/donburi"

// RainDrop is an immortal particle; it is recycled above the screen instead of removed.
type RainDrop struct {
	X, Y  float64
	Len   float64
	Speed float64
	Alpha float64
}

type RainData struct {
	Drops []RainDrop
}

var Rain = donburi.NewComponentType[RainData]()
