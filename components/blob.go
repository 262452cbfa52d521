package components

import (
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Tear is a falling particle spawned under one of the blob's eyes.
type Tear struct {
	X, Y float64
	VY   float64
	Life int     // frames left
	Side float64 // -1 left eye, 1 right eye
	Done bool
}

type BlobData struct {
	Pos    gamemath.Vec2
	Vel    gamemath.Vec2
	Radius float64

	NoiseSeed float64 // advances every frame; drives drift and outline wobble
	TearTimer int     // frames since the last tear
	Tears     []Tear
	Idle      bool // speed below the idle threshold after the last update
}

var Blob = donburi.NewComponentType[BlobData]()
