package systems

import (
	"sort"

	"github.com/automoto/kinetic-brawl/components"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// deltaTime returns the seconds elapsed this tick.
func deltaTime(w donburi.World) float64 {
	if e, ok := tags.Arena.First(w); ok {
		return components.Clock.Get(e).Delta
	}
	return 0
}

// enemiesVisible reports the world layer's opaque field flag. Without an
// arena entity enemies are assumed visible.
func enemiesVisible(w donburi.World) bool {
	if e, ok := tags.Arena.First(w); ok {
		return components.Field.Get(e).EnemiesVisible
	}
	return true
}

func spaceOf(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e).Space
}

// broadPhase returns the entities whose resolv objects share a cell with the
// given rectangle. A nil result means there is no space and every target is
// a candidate.
func broadPhase(w donburi.World, x, y, width, height float64) map[donburi.Entity]bool {
	space := spaceOf(w)
	if space == nil {
		return nil
	}

	probe := resolv.NewObject(x, y, width, height, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	found := make(map[donburi.Entity]bool)
	if col := probe.Check(0, 0, tags.ResolvTarget); col != nil {
		for _, obj := range col.Objects {
			if entry, ok := obj.Data.(*donburi.Entry); ok {
				found[entry.Entity()] = true
			}
		}
	}
	return found
}

// liveTargets collects the living targets in spawn order. Collecting first
// keeps the resolver pass free of query mutation.
func liveTargets(w donburi.World, candidates map[donburi.Entity]bool) []*donburi.Entry {
	if !enemiesVisible(w) {
		return nil
	}

	var live []*donburi.Entry
	tags.Target.Each(w, func(e *donburi.Entry) {
		if !isAlive(e) {
			return
		}
		if candidates != nil && !candidates[e.Entity()] {
			return
		}
		live = append(live, e)
	})

	sort.Slice(live, func(i, j int) bool {
		return components.Target.Get(live[i]).Order < components.Target.Get(live[j]).Order
	})
	return live
}

func isAlive(e *donburi.Entry) bool {
	if !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	return !components.Health.Get(e).Dead()
}

func centerOf(e *donburi.Entry) gamemath.Vec {
	return components.Object.Get(e).Center()
}

// moveWithin translates an object and keeps it inside the space bounds.
func moveWithin(w donburi.World, obj *components.ObjectData, d gamemath.Vec) {
	if space := spaceOf(w); space != nil {
		maxX := float64(space.Width()*space.CellWidth) - obj.W
		maxY := float64(space.Height()*space.CellHeight) - obj.H
		next := gamemath.Vec{
			X: gamemath.ClampFloat(obj.X+d.X, 0, maxX),
			Y: gamemath.ClampFloat(obj.Y+d.Y, 0, maxY),
		}
		d = next.Sub(gamemath.Vec{X: obj.X, Y: obj.Y})
	}
	obj.MoveBy(d)
}
