package systems

import (
	"math"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// canRush reports whether a rush may start. Rushes are refused while the
// guard is broken or fatigued and during the rush cooldown.
func canRush(fighter *donburi.Entry) bool {
	if !isAlive(fighter) {
		return false
	}
	timers := components.Timers.Get(fighter)
	block := components.Block.Get(fighter)
	if inputLocked(timers, block) {
		return false
	}
	switch block.State() {
	case components.BlockBroken, components.BlockFatigued:
		return false
	}
	return !timers.Active(components.TimerRushCooldown) && !timers.Active(components.TimerRushActive)
}

// ResolveRush dashes the fighter toward target and damages every live target
// on the swept segment. The kinetic variant spends the whole kinetic intake
// and scales damage by the effectiveness table.
func ResolveRush(ecs *ecs.ECS, fighter *donburi.Entry, target gamemath.Vec, kinetic bool) (StrikeEvent, bool) {
	if !canRush(fighter) {
		return StrikeEvent{}, false
	}

	f := components.Fighter.Get(fighter)
	timers := components.Timers.Get(fighter)
	block := components.Block.Get(fighter)
	combo := components.Combo.Get(fighter)

	intake := 0
	if kinetic {
		spent, ok := block.PerformKineticStrike()
		if !ok {
			return StrikeEvent{}, false
		}
		intake = spent
		timers.Arm(components.TimerBlockFatigue, cfg.Block.FatigueSeconds)
	} else {
		block.Deactivate()
	}

	start := centerOf(fighter)
	dir := aimFrom(f, start, target)
	dash := f.DashDistance()
	end := start.Add(dir.Scale(dash * cfg.Combat.RushReach))

	// Gather before moving so the sweep starts from the pre-dash position
	tol := cfg.Combat.RushTolerance
	minX, maxX := math.Min(start.X, end.X)-tol, math.Max(start.X, end.X)+tol
	minY, maxY := math.Min(start.Y, end.Y)-tol, math.Max(start.Y, end.Y)+tol
	targets := liveTargets(ecs.World, broadPhase(ecs.World, minX, minY, maxX-minX, maxY-minY))

	moveWithin(ecs.World, components.Object.Get(fighter), dir.Scale(dash))
	f.Facing = dir
	combo.Reset()
	timers.Clear(components.TimerComboWindow)

	timers.Arm(components.TimerRushActive, cfg.Combat.RushActiveSeconds)
	timers.Arm(components.TimerRushCooldown, cfg.Combat.RushCooldownSeconds)
	armAtLeast(timers, components.TimerInvincibility, cfg.Combat.RushInvincibilitySeconds)

	ev := StrikeEvent{
		Origin:    start,
		Direction: dir,
		Target:    end,
	}

	kind, dmgKind := attackRush, components.DamageRush
	if kinetic {
		kind, dmgKind = attackKinetic, components.DamageKinetic
		setPose(fighter, cfg.KineticRush)
		publishEffect(ecs.World, cfg.SoundKineticRush, cfg.EffectRushTrail, start)
	} else {
		setPose(fighter, cfg.Rush)
		publishEffect(ecs.World, cfg.SoundRush, cfg.EffectRushTrail, start)
	}

	mods := buildModifiers(f, timers, kind, 1, intake)
	damage := gamemath.Compose(f.Stats.MeleeDamage*cfg.Combat.RushDamageScale, mods)
	bleed := f.Stats.MeleeDamage * cfg.Combat.BleedDamageRatio

	for _, t := range targets {
		if !isAlive(t) {
			continue
		}
		if !gamemath.LineHitsPoint(start, end, centerOf(t), tol) {
			continue
		}

		killed := hitTarget(ecs, t, damage, dmgKind)
		if !killed {
			tgt := components.Target.Get(t)
			tgt.ApplyBleed(cfg.Combat.BleedDuration, bleed)
			knockTarget(t, start)
			publishEffect(ecs.World, cfg.SoundNone, cfg.EffectBleed, centerOf(t))
		}
		ev.Hits = append(ev.Hits, Hit{Target: t, Damage: damage, Killed: killed})
	}

	if kinetic && intake >= cfg.Block.IntakeCap && len(ev.Hits) > 0 {
		grantEmpowered(ecs.World, fighter)
		ev.Empowered = true
	}

	return ev, true
}
