package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death sequences and removes dead targets from the
// space and the world. A dead fighter stays in place for the host to handle.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)

	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer -= dt
		}
		if death.Timer <= 0 && e.HasComponent(tags.Target) {
			expired = append(expired, e)
		}
	})

	space := spaceOf(ecs.World)
	for _, e := range expired {
		if space != nil {
			if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
				space.Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
