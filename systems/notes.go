package systems

import (
	"math"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/systems/factory"
	"github.com/automoto/sadblob/tags"
	"github.com/yohamta/donburi"
)

// UpdateNotes runs the steal/bump state machine of every note against the
// blob's position from this frame.
func UpdateNotes(w donburi.World) {
	game, random, input, ok := session(w)
	if !ok {
		return
	}
	blobEntry, ok := components.Blob.First(w)
	if !ok {
		return
	}
	blob := components.Blob.Get(blobEntry)
	bump := GetAction(input, cfg.ActionBump).Pressed

	components.Note.Each(w, func(e *donburi.Entry) {
		note := components.Note.Get(e)
		obj := components.Object.Get(e)

		if note.State == components.NoteCarried {
			orbitNote(note, blob.Pos, game.Frame, random.Uniform)
			obj.CenterOn(note.Pos)
			return
		}

		jitterNote(note, random.Noise, game.Frame)
		obj.CenterOn(note.Pos)

		if nearBlob(obj) && inReach(note, blob) {
			if bump {
				note.Pos = bumpAway(note.Pos, blob.Pos, cfg.Note.BumpDistance)
			} else {
				stealNote(note, game)
			}
		}

		// keep inside play area
		note.Pos = gamemath.ClampToRect(note.Pos,
			cfg.Note.ClampMargin, cfg.Note.ClampMargin,
			float64(cfg.C.Width)-cfg.Note.ClampMargin, float64(cfg.C.Height)-cfg.Note.ClampBottomMargin,
		)
		obj.CenterOn(note.Pos)
	})
}

// orbitNote circles a carried note around the blob and drops it back on the
// shop floor once its deadline passes.
func orbitNote(note *components.NoteData, center gamemath.Vec2, frame int, u gamemath.Uniform) {
	note.OrbitAngle += cfg.Note.OrbitSpeed
	note.Pos = gamemath.V(
		center.X+math.Cos(note.OrbitAngle)*note.OrbitRadius,
		center.Y+math.Sin(note.OrbitAngle)*note.OrbitRadius*cfg.Note.OrbitSquash+cfg.Note.OrbitOffsetY,
	)

	if note.HasDeadline && frame >= note.RespawnAt {
		note.State = components.NoteIdle
		note.HasDeadline = false
		note.RespawnAt = 0
		note.Pos = factory.RandomNoteSpot(u)
	}
}

// jitterNote applies the idle wobble: a noisy horizontal drift and a slow bob.
func jitterNote(note *components.NoteData, noise gamemath.Noise, frame int) {
	f := float64(frame)
	wx := noise.Eval2(note.Seed, f*cfg.Note.JitterTime) - 0.5
	note.Pos.X += wx * cfg.Note.JitterX
	note.Pos.Y += math.Sin(f*cfg.Note.BobFrequency+note.Seed) * cfg.Note.BobAmplitude
}

// nearBlob is the broad phase: the note shares a resolv cell with the blob.
// Notes outside a space always pass.
func nearBlob(obj *components.ObjectData) bool {
	if obj.Space == nil {
		return true
	}
	return obj.Check(0, 0, tags.ResolvBlob) != nil
}

func inReach(note *components.NoteData, blob *components.BlobData) bool {
	reach := cfg.Note.Radius + blob.Radius*cfg.Note.ReachFactor
	return gamemath.Dist(note.Pos, blob.Pos) < reach
}

// bumpAway pushes p a fixed distance directly away from `from`, or along +x
// when the two points coincide.
func bumpAway(p, from gamemath.Vec2, dist float64) gamemath.Vec2 {
	push := gamemath.Sub(p, from)
	if gamemath.Length(push) == 0 {
		push = gamemath.V(1, 0)
	}
	return gamemath.Add(p, gamemath.Scale(gamemath.Normalize(push), dist))
}

func stealNote(note *components.NoteData, game *components.GameData) {
	note.State = components.NoteCarried
	note.RespawnAt = game.Frame + cfg.Note.RespawnDelay
	note.HasDeadline = true
	game.Stolen++
}
