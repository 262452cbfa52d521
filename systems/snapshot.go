package systems

import (
	"github.com/automoto/sadblob/components"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/tags"
	"github.com/yohamta/donburi"
)

// BlobView is the drawable state of the blob.
type BlobView struct {
	Pos       gamemath.Vec2
	Vel       gamemath.Vec2
	Radius    float64
	NoiseSeed float64
	Idle      bool
	Tears     []components.Tear
}

// NoteView is the drawable state of one note.
type NoteView struct {
	Pos     gamemath.Vec2
	Carried bool
}

// DebugBox is a collision object as seen by the debug overlay.
type DebugBox struct {
	Bounds gamemath.Rect
	Tag    string
}

// Snapshot is a read-only copy of everything the renderer needs for one frame.
// Nothing in it aliases simulation state.
type Snapshot struct {
	Frame  int
	Stolen int
	Pop    float32

	Blob    BlobView
	HasBlob bool
	Notes   []NoteView
	Rain    []components.RainDrop
	Shelves []gamemath.Rect

	Paused bool
	Debug  bool
	Boxes  []DebugBox // only filled while Debug is on

	// Noise is the field the simulation samples; renderers use it for the
	// blob outline so both agree on the wobble.
	Noise gamemath.Noise
}

// TakeSnapshot copies the current world state for drawing.
func TakeSnapshot(w donburi.World) Snapshot {
	var s Snapshot

	if entry, ok := components.Game.First(w); ok {
		game := components.Game.Get(entry)
		settings := components.Settings.Get(entry)
		s.Frame = game.Frame
		s.Stolen = game.Stolen
		s.Pop = components.HUD.Get(entry).PopValue
		s.Paused = settings.Paused
		s.Debug = settings.Debug
		s.Noise = components.Random.Get(entry).Noise
	}

	if entry, ok := components.Blob.First(w); ok {
		blob := components.Blob.Get(entry)
		s.HasBlob = true
		s.Blob = BlobView{
			Pos:       blob.Pos,
			Vel:       blob.Vel,
			Radius:    blob.Radius,
			NoiseSeed: blob.NoiseSeed,
			Idle:      blob.Idle,
			Tears:     append([]components.Tear(nil), blob.Tears...),
		}
	}

	components.Note.Each(w, func(e *donburi.Entry) {
		note := components.Note.Get(e)
		s.Notes = append(s.Notes, NoteView{
			Pos:     note.Pos,
			Carried: note.State == components.NoteCarried,
		})
	})

	components.Rain.Each(w, func(e *donburi.Entry) {
		s.Rain = append(s.Rain, components.Rain.Get(e).Drops...)
	})

	if entry, ok := components.Map.First(w); ok {
		s.Shelves = append([]gamemath.Rect(nil), components.Map.Get(entry).Shelves...)
	}

	if s.Debug {
		s.Boxes = debugBoxes(w)
	}

	return s
}

func debugBoxes(w donburi.World) []DebugBox {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	var boxes []DebugBox
	for _, obj := range components.Space.Get(entry).Objects() {
		tag := ""
		switch {
		case obj.HasTags(tags.ResolvSolid):
			tag = tags.ResolvSolid
		case obj.HasTags(tags.ResolvBlob):
			tag = tags.ResolvBlob
		case obj.HasTags(tags.ResolvNote):
			tag = tags.ResolvNote
		}
		boxes = append(boxes, DebugBox{
			Bounds: gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H},
			Tag:    tag,
		})
	}
	return boxes
}
