package systems

import (
	"math"
	"testing"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
)

func TestInputVector(t *testing.T) {
	d := 1 / math.Sqrt2
	cases := []struct {
		name string
		held []cfg.ActionID
		want gamemath.Vec2
	}{
		{"none", nil, gamemath.V(0, 0)},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, gamemath.V(1, 0)},
		{"up", []cfg.ActionID{cfg.ActionMoveUp}, gamemath.V(0, -1)},
		{"left and right cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, gamemath.V(0, 0)},
		{"all four cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionMoveUp, cfg.ActionMoveDown}, gamemath.V(0, 0)},
		{"diagonal is unit length", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveDown}, gamemath.V(-d, d)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in components.InputData
			for _, a := range tc.held {
				in.Current[a] = true
			}
			got := InputVector(&in)
			if gamemath.Dist(got, tc.want) > 1e-12 {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGetAction(t *testing.T) {
	var in components.InputData
	in.Current[cfg.ActionBump] = true
	if a := GetAction(&in, cfg.ActionBump); !a.Pressed || !a.JustPressed || a.JustReleased {
		t.Fatalf("first press: %+v", a)
	}

	in.Previous = in.Current
	if a := GetAction(&in, cfg.ActionBump); !a.Pressed || a.JustPressed {
		t.Fatalf("held: %+v", a)
	}

	in.Current[cfg.ActionBump] = false
	if a := GetAction(&in, cfg.ActionBump); a.Pressed || !a.JustReleased {
		t.Fatalf("released: %+v", a)
	}
}
