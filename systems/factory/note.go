package factory

import (
	"math"

	"github.com/automoto/sadblob/archetypes"
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateNote(w donburi.World, u gamemath.Uniform, x, y float64) *donburi.Entry {
	note := archetypes.Note.Spawn(w)

	r := cfg.Note.Radius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvNote)
	obj.SetShape(resolv.NewRectangle(0, 0, r*2, r*2))
	obj.Data = note
	components.Object.SetValue(note, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Note.SetValue(note, components.NoteData{
		Pos:         gamemath.V(x, y),
		State:       components.NoteIdle,
		OrbitAngle:  gamemath.RandRange(u, 0, 2*math.Pi),
		OrbitRadius: gamemath.RandRange(u, cfg.Note.OrbitRadiusMin, cfg.Note.OrbitRadiusMax),
		Seed:        gamemath.RandRange(u, 0, cfg.Note.SeedMax),
	})

	return note
}

// ScatterNotes places cfg.Note.Count notes at random spots on the shop floor.
func ScatterNotes(w donburi.World, u gamemath.Uniform) {
	for i := 0; i < cfg.Note.Count; i++ {
		p := RandomNoteSpot(u)
		CreateNote(w, u, p.X, p.Y)
	}
}

// RandomNoteSpot returns a uniform point inside the note spawn area.
func RandomNoteSpot(u gamemath.Uniform) gamemath.Vec2 {
	return gamemath.V(
		gamemath.RandRange(u, cfg.Note.SpawnMargin, float64(cfg.C.Width)-cfg.Note.SpawnMargin),
		gamemath.RandRange(u, cfg.Note.SpawnMargin, float64(cfg.C.Height)-cfg.Note.SpawnBottomMargin),
	)
}
