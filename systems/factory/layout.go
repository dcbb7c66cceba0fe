package factory

import (
	"log"

	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/arenadata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PopulateArena spawns the fighter and targets of a parsed layout. The
// fighter uses the layout's class when it names one, otherwise class.
func PopulateArena(ecs *ecs.ECS, data *arenadata.ArenaData, class cfg.FighterClass) *donburi.Entry {
	var fighter *donburi.Entry
	if data.Fighter != nil {
		if c, ok := cfg.ParseFighterClass(data.Fighter.Class); ok {
			class = c
		} else if data.Fighter.Class != "" {
			log.Printf("Warning: Unknown fighter class %q, using %s", data.Fighter.Class, class)
		}
		fighter = CreateFighter(ecs, class, data.Fighter.Level, data.Fighter.X, data.Fighter.Y)
	}

	for _, s := range data.Enemies {
		if _, ok := cfg.Targets[s.Kind]; !ok && s.Kind != "" {
			log.Printf("Warning: Unknown enemy kind %q, using %s", s.Kind, cfg.DefaultTargetType)
		}
		CreateTarget(ecs, s.Kind, s.X, s.Y)
	}
	return fighter
}
