package systems

import (
	"math"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveRangedShot fires one hitscan shot toward target. The first live
// target along the line within tolerance takes the hit.
func ResolveRangedShot(ecs *ecs.ECS, fighter *donburi.Entry, target gamemath.Vec) (StrikeEvent, bool) {
	if !canAttack(fighter) {
		return StrikeEvent{}, false
	}

	f := components.Fighter.Get(fighter)
	timers := components.Timers.Get(fighter)
	if timers.Active(components.TimerReload) {
		return StrikeEvent{}, false
	}
	if f.Ammo <= 0 {
		timers.Arm(components.TimerReload, cfg.Combat.ReloadSeconds)
		publishEffect(ecs.World, cfg.SoundReload, cfg.EffectNone, centerOf(fighter))
		return StrikeEvent{}, false
	}

	origin := centerOf(fighter)
	dir := aimFrom(f, origin, target)
	end := origin.Add(dir.Scale(cfg.Combat.RangedRange))

	f.Ammo--
	f.Facing = dir
	if f.Ammo == 0 {
		timers.Arm(components.TimerReload, cfg.Combat.ReloadSeconds)
		publishEffect(ecs.World, cfg.SoundReload, cfg.EffectNone, origin)
	}
	timers.Arm(components.TimerStrikeAnimation, cfg.Combat.StrikeAnimationSeconds)
	setPose(fighter, cfg.Shoot)
	publishEffect(ecs.World, cfg.SoundShot, cfg.EffectMuzzleFlash, origin)

	ev := StrikeEvent{
		Origin:    origin,
		Direction: dir,
		Target:    end,
	}

	tol := cfg.Combat.RangedTolerance
	minX, maxX := math.Min(origin.X, end.X)-tol, math.Max(origin.X, end.X)+tol
	minY, maxY := math.Min(origin.Y, end.Y)-tol, math.Max(origin.Y, end.Y)+tol
	targets := liveTargets(ecs.World, broadPhase(ecs.World, minX, minY, maxX-minX, maxY-minY))

	var first *donburi.Entry
	closest := math.Inf(1)
	for _, t := range targets {
		pos := centerOf(t)
		if !gamemath.LineHitsPoint(origin, end, pos, tol) {
			continue
		}
		if p := gamemath.Projection(origin, end, pos); p < closest {
			closest = p
			first = t
		}
	}
	if first == nil {
		return ev, true
	}

	mods := buildModifiers(f, timers, attackRanged, 1, 0)
	damage := gamemath.Compose(f.Stats.RangedDamage, mods)
	killed := hitTarget(ecs, first, damage, components.DamageRanged)
	ev.Hits = append(ev.Hits, Hit{Target: first, Damage: damage, Killed: killed})

	return ev, true
}
