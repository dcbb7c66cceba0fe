package factory

import (
	"github.com/automoto/kinetic-brawl/archetypes"
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// CreateArena spawns the world singletons: clock, field, damage feed, camera
// and the broad-phase space sized from cfg.Arena.
func CreateArena(ecs *ecs.ECS) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Field.SetValue(arena, components.FieldData{EnemiesVisible: true})
	CreateSpace(ecs, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	CreateCamera(ecs)
	return arena
}

// spaceOf returns the arena space, creating the arena if it is missing.
func spaceOf(ecs *ecs.ECS) *resolv.Space {
	if _, ok := tags.Arena.First(ecs.World); !ok {
		CreateArena(ecs)
	}
	e, _ := components.Space.First(ecs.World)
	return components.Space.Get(e).Space
}
