package systems

import (
	"testing"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/systems/factory"
	"github.com/yohamta/donburi"
)

func TestRainCountNeverChanges(t *testing.T) {
	w := donburi.NewWorld()
	factory.CreateWorld(w, flatNoise(0.5), newUniform())
	entry, ok := components.Rain.First(w)
	if !ok {
		t.Fatal("no rain")
	}

	for i := 0; i < 1000; i++ {
		Step(w)
		drops := components.Rain.Get(entry).Drops
		if len(drops) != cfg.Rain.Count {
			t.Fatalf("frame %d: %d drops, want %d", i, len(drops), cfg.Rain.Count)
		}
		for _, d := range drops {
			if d.Y > float64(cfg.C.Height) || d.X > float64(cfg.C.Width)+cfg.Rain.WrapMargin {
				t.Fatalf("frame %d: drop left the screen at (%f, %f)", i, d.X, d.Y)
			}
		}
	}
}

func TestStepDrop(t *testing.T) {
	random := &components.RandomData{Uniform: newUniform()}

	t.Run("falls with slant", func(t *testing.T) {
		d := components.RainDrop{X: 100, Y: 100, Speed: 4, Len: 10, Alpha: 30}
		stepDrop(&d, random)
		if d.X != 100+cfg.Rain.Slant || d.Y != 104 {
			t.Fatalf("got (%f, %f)", d.X, d.Y)
		}
	})

	t.Run("recycled above the top", func(t *testing.T) {
		d := components.RainDrop{X: 100, Y: float64(cfg.C.Height) - 1, Speed: 5}
		stepDrop(&d, random)
		if d.Y < cfg.Rain.RespawnYMin || d.Y >= cfg.Rain.RespawnYMax {
			t.Fatalf("y = %f, want in [%f, %f)", d.Y, cfg.Rain.RespawnYMin, cfg.Rain.RespawnYMax)
		}
		if d.Speed < cfg.Rain.SpeedMin || d.Speed >= cfg.Rain.SpeedMax ||
			d.Len < cfg.Rain.LenMin || d.Len >= cfg.Rain.LenMax ||
			d.Alpha < cfg.Rain.AlphaMin || d.Alpha >= cfg.Rain.AlphaMax {
			t.Fatalf("recycled drop out of range: %+v", d)
		}
	})

	t.Run("wraps at the right edge", func(t *testing.T) {
		d := components.RainDrop{X: float64(cfg.C.Width) + cfg.Rain.WrapMargin, Y: 10, Speed: 3}
		stepDrop(&d, random)
		if d.X != -cfg.Rain.WrapMargin {
			t.Fatalf("x = %f, want %f", d.X, -cfg.Rain.WrapMargin)
		}
	})
}
