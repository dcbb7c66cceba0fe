package systems

import (
	"math"

	"github.com/automoto/kinetic-brawl/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTargets runs the per-target upkeep: stun and contact cooldowns,
// bleed ticks and knockback travel.
func UpdateTargets(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	if dt <= 0 {
		return
	}

	for _, e := range liveTargets(ecs.World, nil) {
		target := components.Target.Get(e)

		target.Stun = math.Max(0, target.Stun-dt)
		target.ContactCooldown = math.Max(0, target.ContactCooldown-dt)

		if d := target.StepKnockback(dt); !d.IsZero() {
			moveWithin(ecs.World, components.Object.Get(e), d)
		}

		if target.Bleed.Active() {
			tick := math.Min(dt, target.Bleed.Remaining)
			target.Bleed.Remaining -= tick
			dealt := components.Health.Get(e).Apply(target.Bleed.DamagePerSecond * tick)
			target.Bleed.Dealt += dealt

			if components.Health.Get(e).Dead() {
				emitDamageText(ecs.World, target.Bleed.Dealt, components.DamageBleed, centerOf(e))
				startDeathSequence(ecs, e)
				continue
			}
			if target.Bleed.Remaining <= 0 {
				emitDamageText(ecs.World, target.Bleed.Dealt, components.DamageBleed, centerOf(e))
				target.Bleed = components.BleedEffect{}
			}
		}
	}
}
