package factory

import (
	"github.com/automoto/sadblob/archetypes"
	"github.com/automoto/sadblob/components"
	cfg "github.com/automoto/sadblob/config"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateShelf creates a static obstacle and appends it to the map's ordered shelf list.
func CreateShelf(w donburi.World, x, y, width, height float64) *donburi.Entry {
	shelf := archetypes.Shelf.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = shelf // Link for O(1) lookup

	components.Object.SetValue(shelf, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	m := mapData(w)
	m.Shelves = append(m.Shelves, gamemath.Rect{X: x, Y: y, W: width, H: height})
	m.Objects = append(m.Objects, obj)

	return shelf
}

// CreateBookshop creates every shelf from the map config, in order.
func CreateBookshop(w donburi.World) {
	for _, s := range cfg.Map.Shelves {
		CreateShelf(w, s.X, s.Y, s.W, s.H)
	}
}

func mapData(w donburi.World) *components.MapData {
	entry, ok := components.Map.First(w)
	if !ok {
		entry = archetypes.Map.Spawn(w)
	}
	return components.Map.Get(entry)
}
