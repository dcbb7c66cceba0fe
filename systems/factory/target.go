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

// CreateTarget spawns an enemy of the named type centred on (x, y).
func CreateTarget(ecs *ecs.ECS, typeName string, x, y float64) *donburi.Entry {
	// Use the requested type, default to cfg.DefaultTargetType if not found
	targetType, exists := cfg.Targets[typeName]
	if !exists {
		typeName = cfg.DefaultTargetType
		targetType = cfg.Targets[typeName]
	}

	space := spaceOf(ecs)
	arena, _ := tags.Arena.First(ecs.World)
	field := components.Field.Get(arena)

	target := archetypes.Target.Spawn(ecs)

	obj := resolv.NewObject(x-targetType.Width/2, y-targetType.Height/2, targetType.Width, targetType.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, targetType.Width, targetType.Height))
	obj.AddTags("character", tags.ResolvTarget)
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Target.SetValue(target, components.TargetData{
		TypeName:      typeName,
		Order:         field.Spawned,
		ContactDamage: targetType.ContactDamage,
	})
	field.Spawned++

	components.Health.SetValue(target, components.HealthData{
		Current: targetType.Health,
		Max:     targetType.Health,
	})

	return target
}
