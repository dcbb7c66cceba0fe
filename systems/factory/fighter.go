package factory

import (
	"github.com/automoto/kinetic-brawl/archetypes"
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the player's fighter centred on (x, y).
func CreateFighter(ecs *ecs.ECS, class cfg.FighterClass, level int, x, y float64) *donburi.Entry {
	space := spaceOf(ecs)
	fighter := archetypes.Fighter.Spawn(ecs)

	size := cfg.Arena.FighterSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags("character", tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	space.Add(obj)

	classCfg := cfg.Classes[class]
	stats := cfg.StatsFor(class, level)
	if level < 1 {
		level = 1
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		Class:  class,
		Level:  level,
		Stats:  stats,
		Facing: gamemath.Vec{X: 1, Y: 0},
		Mount:  cfg.OnFoot,
		Ammo:   classCfg.MagazineSize,
		Fuel:   classCfg.FuelCapacity,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: stats.MaxHealth,
		Max:     stats.MaxHealth,
	})
	components.Block.SetValue(fighter, components.NewBlockData(cfg.Block))
	components.Mode.SetValue(fighter, components.ModeData{Persisted: cfg.CloseCombat})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	return fighter
}
