package archetypes

import (
	"github.com/automoto/sadblob/components"
	"github.com/automoto/sadblob/tags"
	"github.com/yohamta/donburi"
)

var (
	Blob = newArchetype(
		tags.Blob,
		components.Blob,
		components.Object,
	)
	Note = newArchetype(
		tags.Note,
		components.Note,
		components.Object,
	)
	Shelf = newArchetype(
		tags.Shelf,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Map = newArchetype(
		components.Map,
	)
	Rain = newArchetype(
		components.Rain,
	)
	Game = newArchetype(
		components.Game,
		components.Random,
		components.Input,
		components.HUD,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
