package components

import (
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GameData holds the session-wide counters advanced by the frame driver.
type GameData struct {
	Frame  int // monotonic, incremented once at the start of every step
	Stolen int // total steals this session
}

var Game = donburi.NewComponentType[GameData]()

// RandomData carries the injected randomness every system draws from.
type RandomData struct {
	Noise   gamemath.Noise
	Uniform gamemath.Uniform
}

var Random = donburi.NewComponentType[RandomData]()

// MapData is the ordered shelf list. Collision is resolved in this order.
type MapData struct {
	Shelves []gamemath.Rect
	Objects []*resolv.Object
}

var Map = donburi.NewComponentType[MapData]()
