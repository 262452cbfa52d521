package systems

import (
	"testing"

	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
)

func TestStepAdvancesFrame(t *testing.T) {
	tw := newSparseWorld(t, 0.5, 400, 300)
	for i := 1; i <= 3; i++ {
		Step(tw.w)
		if got := tw.gameData().Frame; got != i {
			t.Fatalf("frame = %d after %d steps", got, i)
		}
	}
}

func TestNotesSeeThisFramesBlobPosition(t *testing.T) {
	// The note is just outside reach of the blob's old position and inside
	// reach of where the blob ends up this frame.
	tw := newSparseWorld(t, 0.5, 400, 300)
	tw.blobData().Vel = gamemath.V(cfg.Blob.MaxSpeed, 0)
	note := tw.addNote(442, 300)
	tw.press(cfg.ActionMoveRight)

	Step(tw.w)

	if note.State != components.NoteCarried {
		t.Fatalf("note not stolen; blob at %v, note at %v", tw.blobData().Pos, note.Pos)
	}
}

func TestWithGameplayChecksSkipsWhilePaused(t *testing.T) {
	tw := newSparseWorld(t, 0.5, 400, 300)
	frame := WithGameplayChecks(UpdateFrame)

	frame(tw.w)
	components.Settings.Get(tw.game).Paused = true
	frame(tw.w)
	frame(tw.w)

	if got := tw.gameData().Frame; got != 1 {
		t.Fatalf("frame = %d, want 1", got)
	}
	if !IsPaused(tw.w) {
		t.Fatalf("IsPaused = false")
	}
}

func TestUpdateSettingsTogglesOnPress(t *testing.T) {
	tw := newSparseWorld(t, 0.5, 400, 300)
	settings := components.Settings.Get(tw.game)

	steps := []struct {
		held   []cfg.ActionID
		paused bool
		debug  bool
	}{
		{[]cfg.ActionID{cfg.ActionPause}, true, false},
		{[]cfg.ActionID{cfg.ActionPause}, true, false}, // still held
		{nil, true, false},
		{[]cfg.ActionID{cfg.ActionPause, cfg.ActionDebug}, false, true},
		{[]cfg.ActionID{cfg.ActionDebug}, false, true},
		{nil, false, true},
		{[]cfg.ActionID{cfg.ActionDebug}, false, false},
	}
	for i, s := range steps {
		tw.press(s.held...)
		UpdateSettings(tw.w)
		if settings.Paused != s.paused || settings.Debug != s.debug {
			t.Fatalf("step %d: paused=%v debug=%v, want %v %v", i, settings.Paused, settings.Debug, s.paused, s.debug)
		}
	}
}
