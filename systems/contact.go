package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContact lets every live, ready target touching the fighter attack it
// once. Stunned and knocked-back targets do not attack.
func UpdateContact(ecs *ecs.ECS) {
	fighter, ok := tags.Fighter.First(ecs.World)
	if !ok || !isAlive(fighter) {
		return
	}

	pos := centerOf(fighter)
	r := cfg.Combat.ContactRadius
	candidates := broadPhase(ecs.World, pos.X-r, pos.Y-r, r*2, r*2)

	for _, e := range liveTargets(ecs.World, candidates) {
		target := components.Target.Get(e)
		if target.ContactCooldown > 0 || target.Stunned() || target.Knockback != nil {
			continue
		}
		tpos := centerOf(e)
		if tpos.Dist(pos) > r {
			continue
		}

		target.ContactCooldown = cfg.Combat.ContactCooldown
		resolveIncoming(ecs, fighter, target.ContactDamage, tpos, false)
		if !isAlive(fighter) {
			return
		}
	}
}
