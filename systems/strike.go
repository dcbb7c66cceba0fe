package systems

import (
	"math"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hit is one target damaged by a resolved attack
type Hit struct {
	Target *donburi.Entry
	Damage float64
	Point  bool // Point hit for melee strikes, false for frontal and sweep hits
	Killed bool
}

// StrikeEvent describes one resolved attack. It is built and returned by a
// single resolver call and never stored.
type StrikeEvent struct {
	Origin    gamemath.Vec
	Direction gamemath.Vec // Unit aim vector
	Target    gamemath.Vec // Resolved target point (clamped for close combat)

	HorizontalRadius float64
	VerticalRadius   float64

	Strike    components.Strike
	Hits      []Hit
	Empowered bool // Empowered state was granted by this attack
}

// PointHit returns the point hit of a melee strike, if any.
func (s StrikeEvent) PointHit() (Hit, bool) {
	for _, h := range s.Hits {
		if h.Point {
			return h, true
		}
	}
	return Hit{}, false
}

// canAttack reports whether the fighter may start a new attack.
func canAttack(fighter *donburi.Entry) bool {
	if !isAlive(fighter) {
		return false
	}
	timers := components.Timers.Get(fighter)
	block := components.Block.Get(fighter)
	if inputLocked(timers, block) || block.State() == components.BlockActive {
		return false
	}
	return !timers.Active(components.TimerStrikeAnimation) && !timers.Active(components.TimerRushActive)
}

// aimFrom returns the unit aim vector from origin to target, falling back to
// the fighter's facing when the target sits on the origin.
func aimFrom(f *components.FighterData, origin, target gamemath.Vec) gamemath.Vec {
	dir := target.Sub(origin).Normalize()
	if dir.IsZero() {
		dir = f.Facing
	}
	return dir
}

// ResolveMeleeStrike resolves one melee swing of the fighter toward target.
// It returns false when the swing was refused (locked, mid-animation, combo
// resting).
func ResolveMeleeStrike(ecs *ecs.ECS, fighter *donburi.Entry, target gamemath.Vec) (StrikeEvent, bool) {
	if !canAttack(fighter) {
		return StrikeEvent{}, false
	}

	f := components.Fighter.Get(fighter)
	timers := components.Timers.Get(fighter)
	combo := components.Combo.Get(fighter)
	mode := components.Mode.Get(fighter)
	classCfg := f.ClassConfig()

	origin := centerOf(fighter)
	hr, vr := f.HitZone()
	dir := aimFrom(f, origin, target)

	effective := mode.Effective(classCfg.HasBoostToggle, f.BoostToggle, f.BoostActive)
	if effective == cfg.CloseCombat {
		target = gamemath.ClampToEllipse(origin, target, hr, vr)
	}

	strike, ok := combo.Advance(classCfg.Combo)
	if !ok {
		return StrikeEvent{}, false
	}

	if strike.IsFinisher {
		timers.Clear(components.TimerComboWindow)
		timers.Arm(components.TimerComboRest, classCfg.Combo.RestSeconds)
	} else {
		timers.Arm(components.TimerComboWindow, classCfg.Combo.WindowSeconds)
	}
	timers.Arm(components.TimerStrikeAnimation, cfg.Combat.StrikeAnimationSeconds)
	timers.Arm(components.TimerMovementBuffer, cfg.Combat.MovementBufferSeconds)
	timers.Arm(components.TimerBackpedalBuffer, cfg.Combat.BackpedalBufferSeconds)
	f.Facing = dir
	setPose(fighter, cfg.StrikePose(strike.Index, strike.IsFinisher))

	ev := StrikeEvent{
		Origin:           origin,
		Direction:        dir,
		Target:           target,
		HorizontalRadius: hr,
		VerticalRadius:   vr,
		Strike:           strike,
	}

	if strike.IsFinisher {
		publishEffect(ecs.World, cfg.SoundFinisher, cfg.EffectFinisherBurst, target)
	} else {
		publishEffect(ecs.World, cfg.SoundStrike, cfg.EffectNone, target)
	}

	// Probe covers the ellipse and the collision threshold around the target
	th := cfg.Combat.CollisionThreshold
	minX, maxX := math.Min(origin.X-hr, target.X-th), math.Max(origin.X+hr, target.X+th)
	minY, maxY := math.Min(origin.Y-vr, target.Y-th), math.Max(origin.Y+vr, target.Y+th)
	candidates := broadPhase(ecs.World, minX, minY, maxX-minX, maxY-minY)
	targets := liveTargets(ecs.World, candidates)

	// The point hit goes to the nearest target within the collision threshold
	var point *donburi.Entry
	nearest := cfg.Combat.CollisionThreshold
	for _, t := range targets {
		if d := centerOf(t).Dist(target); d <= nearest {
			nearest = d
			point = t
		}
	}

	mods := buildModifiers(f, timers, attackMelee, strike.Multiplier, 0)
	base := f.Stats.MeleeDamage
	pointDamage := gamemath.Compose(base, mods)
	frontalDamage := gamemath.Compose(base*cfg.Combat.FrontalDamageRatio, mods)

	for _, t := range targets {
		if !isAlive(t) {
			continue
		}
		pos := centerOf(t)

		isPoint := t == point
		if !isPoint {
			if !gamemath.InsideEllipse(pos, origin, hr, vr) || dir.Dot(pos.Sub(origin)) <= 0 {
				continue
			}
		}

		damage, kind := frontalDamage, components.DamageFrontal
		if isPoint {
			damage, kind = pointDamage, components.DamagePoint
		}

		killed := hitTarget(ecs, t, damage, kind)
		combo.MarkConnected()
		if !killed {
			if strike.Knockback {
				knockTarget(t, origin)
			}
			if strike.ApplyStun {
				components.Target.Get(t).ApplyStun(strike.StunSeconds)
			}
		}
		ev.Hits = append(ev.Hits, Hit{Target: t, Damage: damage, Point: isPoint, Killed: killed})
	}

	// Empowerment is evaluated once, after the finisher's pass
	if strike.IsFinisher && combo.ConsumeEmpowerment() {
		grantEmpowered(ecs.World, fighter)
		ev.Empowered = true
	}

	return ev, true
}
