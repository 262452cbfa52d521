package systems

import (
	"math"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateBlob moves the blob from input plus involuntary drift, keeps it out of
// the shelves, and lets it cry while it stands still.
func UpdateBlob(w donburi.World) {
	game, random, input, ok := session(w)
	if !ok {
		return
	}
	entry, ok := components.Blob.First(w)
	if !ok {
		return
	}
	blob := components.Blob.Get(entry)
	obj := components.Object.Get(entry)

	drift := driftVector(random.Noise, blob.NoiseSeed, game.Frame)
	moveBlob(blob, InputVector(input), drift)

	if m, ok := components.Map.First(w); ok {
		resolveShelves(blob, obj, components.Map.Get(m))
	} else {
		obj.CenterOn(blob.Pos)
	}

	spawnTearIfIdle(blob, random.Uniform)
	advanceTears(blob)

	blob.NoiseSeed += cfg.Blob.NoiseSeedStep
}

// driftVector returns the small wandering push whose angle follows the noise field.
func driftVector(noise gamemath.Noise, seed float64, frame int) gamemath.Vec2 {
	n := noise.Eval2(seed, float64(frame)*cfg.Blob.DriftTimeScale)
	angle := n * 2 * math.Pi * cfg.Blob.DriftTurns
	return gamemath.Scale(gamemath.FromAngle(angle), cfg.Blob.DriftAmplitude)
}

// moveBlob integrates velocity and position, then hard clamps into the play area.
func moveBlob(blob *components.BlobData, move, drift gamemath.Vec2) {
	desired := gamemath.Normalize(gamemath.Add(move, drift))

	blob.Vel = gamemath.Add(blob.Vel, gamemath.Scale(desired, cfg.Blob.Acceleration))
	blob.Vel.Y += cfg.Blob.Gravity

	// strong damping (sad sluggishness)
	blob.Vel = gamemath.ApplyDamping(blob.Vel, cfg.Blob.Damping)
	blob.Vel = gamemath.ClampMagnitude(blob.Vel, cfg.Blob.MaxSpeed)

	blob.Pos = gamemath.Add(blob.Pos, blob.Vel)

	r := blob.Radius
	blob.Pos = gamemath.ClampToRect(blob.Pos, r, r, float64(cfg.C.Width)-r, cfg.PlayHeight()-r)
}

// resolveShelves pushes the blob out of every shelf, once each, in map order.
// Velocity is left alone. The resolv object only follows the result.
func resolveShelves(blob *components.BlobData, obj *components.ObjectData, m *components.MapData) {
	for _, r := range m.Shelves {
		blob.Pos, _ = gamemath.ResolveCircleRect(blob.Pos, blob.Radius, r)
	}
	obj.CenterOn(blob.Pos)
}

// spawnTearIfIdle advances the tear timer and drops a tear once the blob has
// been slow for long enough. The timer is not reset when the blob moves.
func spawnTearIfIdle(blob *components.BlobData, u gamemath.Uniform) {
	blob.Idle = gamemath.Length(blob.Vel) < cfg.Blob.IdleSpeed
	blob.TearTimer++
	if blob.Idle && blob.TearTimer > cfg.Blob.TearCooldown {
		blob.TearTimer = 0
		blob.Tears = append(blob.Tears, factory.NewTear(u, blob.Pos.X, blob.Pos.Y))
	}
}

// advanceTears moves every tear and drops the finished ones.
func advanceTears(blob *components.BlobData) {
	kept := blob.Tears[:0]
	for _, t := range blob.Tears {
		stepTear(&t)
		if !t.Done {
			kept = append(kept, t)
		}
	}
	blob.Tears = kept
}

func stepTear(t *components.Tear) {
	t.Y += t.VY
	t.VY += cfg.Tear.Gravity
	t.Life--
	if t.Life <= 0 || t.Y > cfg.PlayHeight() {
		t.Done = true
	}
}
