package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type timerTransition func(ecs *ecs.ECS, e *donburi.Entry)

// timerTransitions maps each timer to the transition fired when it runs out.
// Timers without an entry end silently.
var timerTransitions = [components.TimerCount]timerTransition{
	components.TimerStrikeAnimation: endAction,
	components.TimerRushActive:      endAction,
	components.TimerStun:            endHitReaction,
	components.TimerKnockback:       endHitReaction,
	components.TimerBlockStunLock:   endStunLock,
	components.TimerBlockFatigue:    endFatigue,
	components.TimerReload:          endReload,
	components.TimerComboWindow:     expireComboWindow,
	components.TimerComboRest:       endComboRest,
}

// UpdateTimers advances every fighter countdown and fires the transitions of
// the timers that ran out this tick.
func UpdateTimers(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	if dt <= 0 {
		return
	}

	var fighters []*donburi.Entry
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighters = append(fighters, e)
	})

	for _, e := range fighters {
		components.State.Get(e).StateTimer += dt
		components.Timers.Get(e).Advance(dt, func(id components.TimerID) {
			if fn := timerTransitions[id]; fn != nil {
				fn(ecs, e)
			}
		})
	}
}

// returnToIdle drops the current pose back to idle unless a lock still holds.
func returnToIdle(e *donburi.Entry) {
	if !isAlive(e) {
		return
	}
	timers := components.Timers.Get(e)
	block := components.Block.Get(e)
	switch {
	case block.IsStunLocked():
		setPose(e, cfg.GuardBroken)
	case timers.Active(components.TimerStun), timers.Active(components.TimerKnockback):
		setPose(e, cfg.Stunned)
	case block.State() == components.BlockActive:
		setPose(e, cfg.Guard)
	case block.State() == components.BlockFatigued:
		setPose(e, cfg.Fatigued)
	default:
		setPose(e, cfg.Idle)
	}
}

func endAction(ecs *ecs.ECS, e *donburi.Entry) {
	timers := components.Timers.Get(e)
	if timers.Active(components.TimerStrikeAnimation) || timers.Active(components.TimerRushActive) {
		return
	}
	returnToIdle(e)
}

func endHitReaction(ecs *ecs.ECS, e *donburi.Entry) {
	returnToIdle(e)
}

func endStunLock(ecs *ecs.ECS, e *donburi.Entry) {
	if components.Block.Get(e).EndStunLock() {
		components.Timers.Get(e).Arm(components.TimerBlockFatigue, cfg.Block.FatigueSeconds)
	}
	returnToIdle(e)
}

func endFatigue(ecs *ecs.ECS, e *donburi.Entry) {
	components.Block.Get(e).Recover()
	returnToIdle(e)
}

func endReload(ecs *ecs.ECS, e *donburi.Entry) {
	f := components.Fighter.Get(e)
	f.Ammo = f.ClassConfig().MagazineSize
}

func expireComboWindow(ecs *ecs.ECS, e *donburi.Entry) {
	components.Combo.Get(e).ExpireWindow()
}

func endComboRest(ecs *ecs.ECS, e *donburi.Entry) {
	components.Combo.Get(e).EndRest()
}
