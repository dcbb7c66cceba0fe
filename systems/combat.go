package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// inputLocked reports whether the fighter must reject movement and attacks.
func inputLocked(timers *components.TimersData, block *components.BlockData) bool {
	return timers.Active(components.TimerStun) ||
		timers.Active(components.TimerKnockback) ||
		block.IsStunLocked()
}

// armAtLeast arms a timer unless it already has more time left.
func armAtLeast(timers *components.TimersData, id components.TimerID, seconds float64) {
	if timers.Remaining(id) < seconds {
		timers.Arm(id, seconds)
	}
}

func setPose(e *donburi.Entry, pose cfg.StateID) {
	state := components.State.Get(e)
	if state.CurrentState != pose {
		state.CurrentState = pose
		state.StateTimer = 0
	}
}

// grantEmpowered starts the empowered state: invincibility plus the damage
// bonus read by buildModifiers.
func grantEmpowered(w donburi.World, e *donburi.Entry) {
	timers := components.Timers.Get(e)
	timers.Arm(components.TimerEmpowered, cfg.Combat.EmpoweredSeconds)
	armAtLeast(timers, components.TimerInvincibility, cfg.Combat.EmpoweredSeconds)
	publishEffect(w, cfg.SoundEmpowered, cfg.EffectEmpoweredAura, centerOf(e))
}

// hitTarget subtracts damage from a live target and reports it to the
// presentation layer. It returns true when the hit killed the target.
func hitTarget(ecs *ecs.ECS, target *donburi.Entry, damage float64, kind components.DamageKind) bool {
	hp := components.Health.Get(target)
	pos := centerOf(target)
	dealt := hp.Apply(damage)

	emitDamageText(ecs.World, dealt, kind, pos)
	publishEffect(ecs.World, cfg.SoundHit, cfg.EffectHitSpark, pos)

	if hp.Dead() {
		startDeathSequence(ecs, target)
		return true
	}
	return false
}

func knockTarget(target *donburi.Entry, from gamemath.Vec) {
	dir := centerOf(target).Sub(from)
	components.Target.Get(target).Launch(dir, cfg.Combat.KnockbackSpeed, cfg.Combat.KnockbackDuration)
}

// resolveIncoming applies an enemy attack to the fighter. The guard absorbs
// it when raised (projectiles only from the front). It returns true when the
// attack was absorbed by the guard.
func resolveIncoming(ecs *ecs.ECS, fighter *donburi.Entry, damage float64, source gamemath.Vec, projectile bool) bool {
	if !isAlive(fighter) {
		return false
	}
	timers := components.Timers.Get(fighter)
	if timers.Active(components.TimerInvincibility) {
		return false
	}

	f := components.Fighter.Get(fighter)
	block := components.Block.Get(fighter)
	combo := components.Combo.Get(fighter)
	pos := centerOf(fighter)

	if block.State() == components.BlockActive {
		fromFront := f.Facing.Dot(source.Sub(pos)) > 0
		absorbed := true
		negated := false
		if projectile {
			absorbed = fromFront
			negated = block.ProcessProjectileBlock(damage, fromFront)
		} else {
			negated = block.ProcessAttack(damage)
		}

		if absorbed {
			emitDamageText(ecs.World, damage, components.DamageBlocked, pos)
			publishEffect(ecs.World, cfg.SoundBlock, cfg.EffectGuardSpark, pos)
			setPose(fighter, cfg.GuardImpact)

			if block.IsStunLocked() {
				timers.Arm(components.TimerBlockStunLock, cfg.Block.StunLockSeconds)
				combo.Reset()
				setPose(fighter, cfg.GuardBroken)
				publishEffect(ecs.World, cfg.SoundGuardBreak, cfg.EffectGuardShatter, pos)
			}
			if !negated {
				hurtFighter(ecs, fighter, block.Residual(damage))
			}
			return true
		}
	}

	hurtFighter(ecs, fighter, damage)
	timers.Arm(components.TimerInvincibility, cfg.Combat.FighterInvulnSeconds)
	timers.Arm(components.TimerKnockback, cfg.Combat.FighterKnockbackSeconds)
	timers.Arm(components.TimerStun, cfg.Combat.FighterStunSeconds)
	combo.Reset()
	block.Deactivate()
	if isAlive(fighter) {
		setPose(fighter, cfg.Stunned)
	}
	return false
}

func hurtFighter(ecs *ecs.ECS, fighter *donburi.Entry, damage float64) {
	if damage <= 0 {
		return
	}
	hp := components.Health.Get(fighter)
	pos := centerOf(fighter)
	dealt := hp.Apply(damage)
	emitDamageText(ecs.World, dealt, components.DamageHurt, pos)
	publishEffect(ecs.World, cfg.SoundHurt, cfg.EffectNone, pos)
	if hp.Dead() {
		startDeathSequence(ecs, fighter)
	}
}

// BlockProjectile resolves a projectile fired at the fighter from the given
// world position. It returns true when the guard absorbed it.
func BlockProjectile(ecs *ecs.ECS, fighter *donburi.Entry, incoming float64, from gamemath.Vec) bool {
	return resolveIncoming(ecs, fighter, incoming, from, true)
}

func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}
	publishEffect(ecs.World, cfg.SoundDeath, cfg.EffectNone, centerOf(e))

	if e.HasComponent(components.Target) {
		target := components.Target.Get(e)
		target.Knockback = nil
		target.Bleed = components.BleedEffect{}
	}
	if e.HasComponent(tags.Fighter) {
		setPose(e, cfg.Die)
	}

	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Combat.DeathSeconds})
}
