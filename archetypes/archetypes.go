package archetypes

import (
	"github.com/automoto/kinetic-brawl/components"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Health,
		components.Timers,
		components.Combo,
		components.Block,
		components.Mode,
		components.Input,
		components.State,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
		components.Health,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	// Arena holds the per-world singletons read by every system
	Arena = newArchetype(
		tags.Arena,
		components.Clock,
		components.Field,
		components.DamageFeed,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
}
