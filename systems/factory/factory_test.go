package factory

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/tags"
	"github.com/yohamta/donburi"
)

type flatNoise float64

func (n flatNoise) Eval2(x, y float64) float64    { return float64(n) }
func (n flatNoise) Eval3(x, y, z float64) float64 { return float64(n) }

func newWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	CreateWorld(w, flatNoise(0.5), rand.New(rand.NewPCG(1, 2)))
	return w
}

func TestCreateWorldShelvesInOrder(t *testing.T) {
	w := newWorld(t)
	entry, ok := components.Map.First(w)
	if !ok {
		t.Fatal("no map")
	}
	m := components.Map.Get(entry)
	if len(m.Shelves) != len(cfg.Map.Shelves) || len(m.Objects) != len(cfg.Map.Shelves) {
		t.Fatalf("%d shelves, %d objects, want %d", len(m.Shelves), len(m.Objects), len(cfg.Map.Shelves))
	}
	for i, def := range cfg.Map.Shelves {
		want := gamemath.Rect{X: def.X, Y: def.Y, W: def.W, H: def.H}
		if m.Shelves[i] != want {
			t.Fatalf("shelf %d = %+v, want %+v", i, m.Shelves[i], want)
		}
		obj := m.Objects[i]
		if obj.X != def.X || obj.Y != def.Y || obj.W != def.W || obj.H != def.H || !obj.HasTags(tags.ResolvSolid) {
			t.Fatalf("shelf %d object = (%f, %f, %f, %f)", i, obj.X, obj.Y, obj.W, obj.H)
		}
	}
}

func TestCreateWorldPopulation(t *testing.T) {
	w := newWorld(t)

	notes := 0
	components.Note.Each(w, func(e *donburi.Entry) {
		notes++
		n := components.Note.Get(e)
		m := cfg.Note.SpawnMargin
		if n.Pos.X < m || n.Pos.X >= float64(cfg.C.Width)-m || n.Pos.Y < m || n.Pos.Y >= float64(cfg.C.Height)-cfg.Note.SpawnBottomMargin {
			t.Errorf("note spawned at %v", n.Pos)
		}
		if n.State != components.NoteIdle || n.HasDeadline {
			t.Errorf("new note is %v with deadline %v", n.State, n.HasDeadline)
		}
		if n.OrbitRadius < cfg.Note.OrbitRadiusMin || n.OrbitRadius >= cfg.Note.OrbitRadiusMax {
			t.Errorf("orbit radius %f", n.OrbitRadius)
		}
		if n.Seed < 0 || n.Seed >= cfg.Note.SeedMax {
			t.Errorf("seed %f", n.Seed)
		}
	})
	if notes != cfg.Note.Count {
		t.Fatalf("%d notes, want %d", notes, cfg.Note.Count)
	}

	rainEntry, _ := components.Rain.First(w)
	drops := components.Rain.Get(rainEntry).Drops
	if len(drops) != cfg.Rain.Count {
		t.Fatalf("%d drops, want %d", len(drops), cfg.Rain.Count)
	}
	for _, d := range drops {
		if d.X < 0 || d.X >= float64(cfg.C.Width) || d.Y < 0 || d.Y >= float64(cfg.C.Height) {
			t.Fatalf("first drop outside the screen: %+v", d)
		}
	}

	blobEntry, ok := components.Blob.First(w)
	if !ok {
		t.Fatal("no blob")
	}
	blob := components.Blob.Get(blobEntry)
	if blob.Pos != gamemath.V(cfg.Blob.StartX, cfg.Blob.StartY) || blob.Radius != cfg.Blob.Radius {
		t.Fatalf("blob = %+v", blob)
	}
	if blob.NoiseSeed < 0 || blob.NoiseSeed >= cfg.Blob.NoiseSeedMax {
		t.Fatalf("noise seed %f", blob.NoiseSeed)
	}
}

func TestObjectsRegisteredInSpace(t *testing.T) {
	w := newWorld(t)
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		t.Fatal("no space")
	}
	objects := components.Space.Get(spaceEntry).Objects()
	want := len(cfg.Map.Shelves) + 1 + cfg.Note.Count
	if len(objects) != want {
		t.Fatalf("%d objects in space, want %d", len(objects), want)
	}
	for _, obj := range objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			t.Fatalf("object at (%f, %f) not linked to an entity", obj.X, obj.Y)
		}
	}

	blobEntry, _ := components.Blob.First(w)
	obj := components.Object.Get(blobEntry)
	r := cfg.Blob.Radius
	if obj.X != cfg.Blob.StartX-r || obj.Y != cfg.Blob.StartY-r || obj.W != 2*r {
		t.Fatalf("blob bounds = (%f, %f, %f)", obj.X, obj.Y, obj.W)
	}
}

func TestNewTear(t *testing.T) {
	u := rand.New(rand.NewPCG(3, 4))
	sides := map[float64]int{}
	for i := 0; i < 200; i++ {
		tear := NewTear(u, 100, 200)
		sides[tear.Side]++
		if tear.X != 100+tear.Side*cfg.Blob.EyeOffsetX || tear.Y != 200-cfg.Blob.TearSpawnLift {
			t.Fatalf("tear at (%f, %f) for side %f", tear.X, tear.Y, tear.Side)
		}
		if tear.VY < cfg.Tear.SpeedMin || tear.VY >= cfg.Tear.SpeedMax || tear.Life != cfg.Tear.Life || tear.Done {
			t.Fatalf("tear = %+v", tear)
		}
	}
	if len(sides) != 2 || sides[-1] == 0 || sides[1] == 0 {
		t.Fatalf("sides = %v", sides)
	}
}

func TestCreateShelfWithoutSpace(t *testing.T) {
	w := donburi.NewWorld()
	CreateShelf(w, 1, 2, 3, 4)
	entry, ok := components.Map.First(w)
	if !ok {
		t.Fatal("map not created")
	}
	if got := components.Map.Get(entry).Shelves; len(got) != 1 || got[0] != (gamemath.Rect{X: 1, Y: 2, W: 3, H: 4}) {
		t.Fatalf("shelves = %v", got)
	}
}
