package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddCombatSystems registers the combat systems in tick order. Timers run
// first so every resolver sees this tick's countdowns.
func AddCombatSystems(e *ecs.ECS) *ecs.ECS {
	e.AddSystem(UpdateTimers)
	e.AddSystem(UpdateTargets)
	e.AddSystem(UpdateFighter)
	e.AddSystem(UpdateContact)
	e.AddSystem(UpdateDeaths)
	e.AddSystem(UpdateDamageText)
	e.AddSystem(UpdateStates)
	e.AddSystem(UpdateCamera)
	e.AddSystem(ProcessEvents)

	CombatEffectEvent.Subscribe(e.World, shakeOnImpact)
	return e
}

// AdvanceClock records the elapsed seconds of the coming tick. The host
// calls it before ecs.Update.
func AdvanceClock(w donburi.World, dt float64) {
	e, ok := tags.Arena.First(w)
	if !ok {
		return
	}
	clock := components.Clock.Get(e)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Tick++
}
