package systems

import (
	"testing"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/systems/factory"
	"github.com/automoto/sadblob/tags"
	"github.com/yohamta/donburi"
)

func newFullWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateWorld(w, flatNoise(0.5), newUniform())
	return w
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newFullWorld(t)
	blobEntry, _ := components.Blob.First(w)
	blob := components.Blob.Get(blobEntry)
	blob.Tears = append(blob.Tears, components.Tear{X: 1, Y: 2, Life: 10})
	rainEntry, _ := components.Rain.First(w)
	rain := components.Rain.Get(rainEntry)
	firstDrop := rain.Drops[0]

	s := TakeSnapshot(w)
	if !s.HasBlob || len(s.Notes) != cfg.Note.Count || len(s.Rain) != cfg.Rain.Count || len(s.Shelves) != len(cfg.Map.Shelves) {
		t.Fatalf("incomplete snapshot: blob=%v notes=%d rain=%d shelves=%d", s.HasBlob, len(s.Notes), len(s.Rain), len(s.Shelves))
	}

	s.Blob.Tears[0].Y = 999
	s.Rain[0].X = -999
	s.Shelves[0].X = -999

	if blob.Tears[0].Y != 2 {
		t.Fatalf("snapshot tears alias the blob")
	}
	if rain.Drops[0] != firstDrop {
		t.Fatalf("snapshot rain aliases the world")
	}
	mapEntry, _ := components.Map.First(w)
	if components.Map.Get(mapEntry).Shelves[0].X != cfg.Map.Shelves[0].X {
		t.Fatalf("snapshot shelves alias the map")
	}
}

func TestSnapshotTracksCarriedNotes(t *testing.T) {
	tw := newSparseWorld(t, 0.5, 400, 300)
	tw.addNote(410, 300)
	tw.addNote(700, 100)
	tw.notesFrame()

	s := TakeSnapshot(tw.w)
	carried := 0
	for _, n := range s.Notes {
		if n.Carried {
			carried++
		}
	}
	if carried != 1 || s.Stolen != 1 || s.Frame != 1 {
		t.Fatalf("carried=%d stolen=%d frame=%d", carried, s.Stolen, s.Frame)
	}
}

func TestSnapshotDebugBoxes(t *testing.T) {
	w := newFullWorld(t)
	if s := TakeSnapshot(w); s.Boxes != nil {
		t.Fatalf("boxes collected with the overlay off")
	}

	game, _ := components.Game.First(w)
	components.Settings.Get(game).Debug = true
	s := TakeSnapshot(w)

	count := map[string]int{}
	for _, b := range s.Boxes {
		count[b.Tag]++
	}
	if count[tags.ResolvSolid] != len(cfg.Map.Shelves) || count[tags.ResolvBlob] != 1 || count[tags.ResolvNote] != cfg.Note.Count {
		t.Fatalf("boxes by tag = %v", count)
	}
}
