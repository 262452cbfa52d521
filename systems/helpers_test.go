package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/systems/factory"
	"github.com/yohamta/donburi"
)

// flatNoise returns the same value everywhere.
type flatNoise float64

func (n flatNoise) Eval2(x, y float64) float64    { return float64(n) }
func (n flatNoise) Eval3(x, y, z float64) float64 { return float64(n) }

func newUniform() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

type testWorld struct {
	w    donburi.World
	game *donburi.Entry
	blob *donburi.Entry
}

// newSparseWorld builds a session with a space and a blob but no shelves,
// notes or rain.
func newSparseWorld(t *testing.T, noise flatNoise, blobX, blobY float64) *testWorld {
	t.Helper()
	w := donburi.NewWorld()
	u := newUniform()
	game := factory.CreateGame(w, noise, u)
	factory.CreateSpace(w, cfg.C.Width, cfg.C.Height, cfg.Map.CellSize, cfg.Map.CellSize)
	blob := factory.CreateBlob(w, u, blobX, blobY)
	return &testWorld{w: w, game: game, blob: blob}
}

func (tw *testWorld) input() *components.InputData {
	return components.Input.Get(tw.game)
}

func (tw *testWorld) gameData() *components.GameData {
	return components.Game.Get(tw.game)
}

func (tw *testWorld) blobData() *components.BlobData {
	return components.Blob.Get(tw.blob)
}

func (tw *testWorld) addNote(x, y float64) *components.NoteData {
	e := factory.CreateNote(tw.w, newUniform(), x, y)
	return components.Note.Get(e)
}

// press replaces the held actions for the next frame.
func (tw *testWorld) press(actions ...cfg.ActionID) {
	in := tw.input()
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}
