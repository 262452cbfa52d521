package components

import (
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NoteState is the steal state of a note.
type NoteState int

const (
	NoteIdle NoteState = iota
	NoteCarried
)

func (s NoteState) String() string {
	switch s {
	case NoteIdle:
		return "idle"
	case NoteCarried:
		return "carried"
	}
	return "unknown"
}

type NoteData struct {
	Pos   gamemath.Vec2
	State NoteState

	// Orbit around the blob while carried
	OrbitAngle  float64
	OrbitRadius float64

	// RespawnAt is the frame the note returns to the shop floor.
	// Only meaningful while HasDeadline is set, which holds iff State == NoteCarried.
	RespawnAt   int
	HasDeadline bool

	Seed float64 // per-note noise phase for idle jitter
}

var Note = donburi.NewComponentType[NoteData]()
