package components

import (
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the centre of the object's bounding box.
func (o *ObjectData) Center() gamemath.Vec {
	return gamemath.Vec{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// MoveBy translates the object and refreshes its cells in the space.
func (o *ObjectData) MoveBy(d gamemath.Vec) {
	if d.IsZero() {
		return
	}
	o.X += d.X
	o.Y += d.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the arena's broad-phase space
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
