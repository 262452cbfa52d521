package components

import (
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collision object in the resolv space.
type ObjectData struct {
	*resolv.Object
}

// CenterOn moves the object so its bounds are centered on p and refreshes its cells.
func (o *ObjectData) CenterOn(p gamemath.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
