package systems

import (
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// CombatEffect is a visual/audio side effect emitted by the resolvers. The
// core passes it through; subscribers decide how to present it.
type CombatEffect struct {
	Sound    cfg.SoundID
	Effect   cfg.EffectID
	Position gamemath.Vec
}

var CombatEffectEvent = events.NewEventType[CombatEffect]()

func publishEffect(w donburi.World, sound cfg.SoundID, effect cfg.EffectID, pos gamemath.Vec) {
	CombatEffectEvent.Publish(w, CombatEffect{Sound: sound, Effect: effect, Position: pos})
}

// ProcessEvents delivers the tick's queued events to their subscribers.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
