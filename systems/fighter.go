package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighter turns the tick's raw input into mode changes, guard, movement
// and attacks. Every input is rejected while stunned, knocked back or
// stun-locked by a broken guard.
func UpdateFighter(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)

	var fighters []*donburi.Entry
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighters = append(fighters, e)
	})

	for _, e := range fighters {
		if !isAlive(e) {
			continue
		}
		updateFighter(ecs, e, dt)
	}
}

func updateFighter(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	input := components.Input.Get(e)
	timers := components.Timers.Get(e)
	block := components.Block.Get(e)

	if inputLocked(timers, block) {
		// Held state is tracked so release is seen once the lock ends
		components.Mode.Get(e).OverrideHeld = input.Action(cfg.ActionRangedOverride).Pressed
		components.Fighter.Get(e).BoostActive = false
		return
	}

	handleModeInput(e, input)
	updateBoost(e, input, dt)
	handleBlockInput(e, input)
	handleMovement(ecs, e, input, dt)
	handleAttackInput(ecs, e, input)
}

func isBusy(timers *components.TimersData) bool {
	return timers.Active(components.TimerStrikeAnimation) || timers.Active(components.TimerRushActive)
}

func handleModeInput(e *donburi.Entry, input *components.InputData) {
	f := components.Fighter.Get(e)
	mode := components.Mode.Get(e)
	timers := components.Timers.Get(e)
	combo := components.Combo.Get(e)
	busy := isBusy(timers)

	mode.OverrideHeld = input.Action(cfg.ActionRangedOverride).Pressed

	changed := false
	if input.Action(cfg.ActionCycleMode).JustPressed {
		next := mode.Persisted.Next()
		if pending, ok := mode.Pending(); ok {
			next = pending.Next()
		}
		changed = mode.RequestMode(next, busy)
	}
	if !busy && mode.ApplyPending() {
		changed = true
	}
	if changed {
		combo.Reset()
		timers.Clear(components.TimerComboWindow)
		timers.Clear(components.TimerComboRest)
		mode.PreferencesDirty = true
	}

	if input.Action(cfg.ActionBoostToggle).JustPressed && f.ClassConfig().HasBoostToggle &&
		!timers.Active(components.TimerBoostToggle) {
		f.BoostToggle = !f.BoostToggle
		timers.Arm(components.TimerBoostToggle, cfg.Combat.BoostToggleSeconds)
		mode.PreferencesDirty = true
	}
}

func updateBoost(e *donburi.Entry, input *components.InputData, dt float64) {
	f := components.Fighter.Get(e)
	f.BoostActive = f.Mount == cfg.OnVehicle && f.Fuel > 0 && input.Action(cfg.ActionVehicleBoost).Pressed
	if f.BoostActive {
		f.Fuel -= cfg.Combat.BoostFuelPerSecond * dt
		if f.Fuel <= 0 {
			f.Fuel = 0
			f.BoostActive = false
		}
	}
}

func handleBlockInput(e *donburi.Entry, input *components.InputData) {
	block := components.Block.Get(e)
	action := input.Action(cfg.ActionBlock)

	if action.JustPressed && block.Activate() {
		setPose(e, cfg.Guard)
	}
	if action.JustReleased && block.State() == components.BlockActive {
		block.Deactivate()
		returnToIdle(e)
	}
}

func handleMovement(ecs *ecs.ECS, e *donburi.Entry, input *components.InputData, dt float64) {
	f := components.Fighter.Get(e)
	timers := components.Timers.Get(e)
	block := components.Block.Get(e)

	if timers.Active(components.TimerMovementBuffer) || isBusy(timers) || block.State() == components.BlockActive {
		return
	}

	dir := gamemath.MoveDirection(
		input.Action(cfg.ActionMoveLeft).Pressed,
		input.Action(cfg.ActionMoveRight).Pressed,
		input.Action(cfg.ActionMoveUp).Pressed,
		input.Action(cfg.ActionMoveDown).Pressed,
	)
	state := components.State.Get(e)
	if dir.IsZero() {
		if state.CurrentState == cfg.Walk {
			setPose(e, cfg.Idle)
		}
		return
	}

	speed := f.Stats.MoveSpeed
	if timers.Active(components.TimerActionSlowdown) {
		speed *= cfg.Combat.ActionSlowdownScale
	}
	if timers.Active(components.TimerBackpedalBuffer) && dir.Dot(f.Facing) < 0 {
		speed *= cfg.Combat.BackpedalSpeedScale
	}
	if f.BoostActive {
		speed *= cfg.Combat.BoostSpeedScale
	}

	moveWithin(ecs.World, components.Object.Get(e), dir.Scale(speed*dt))
	if !timers.Active(components.TimerBackpedalBuffer) {
		f.Facing = dir
	}
	if state.CurrentState == cfg.Idle {
		setPose(e, cfg.Walk)
	}
}

func handleAttackInput(ecs *ecs.ECS, e *donburi.Entry, input *components.InputData) {
	switch {
	case input.Action(cfg.ActionKineticRush).JustPressed:
		ResolveRush(ecs, e, input.Aim, true)
	case input.Action(cfg.ActionRush).JustPressed:
		ResolveRush(ecs, e, input.Aim, false)
	case input.Action(cfg.ActionAttack).JustPressed:
		Attack(ecs, e, input.Aim)
	}
}

// Attack dispatches one attack by the fighter's effective combat mode.
// Balanced picks melee when the target lies inside the hit-zone ellipse.
func Attack(ecs *ecs.ECS, e *donburi.Entry, target gamemath.Vec) (StrikeEvent, bool) {
	f := components.Fighter.Get(e)
	mode := components.Mode.Get(e)

	switch mode.Effective(f.ClassConfig().HasBoostToggle, f.BoostToggle, f.BoostActive) {
	case cfg.Ranged:
		return ResolveRangedShot(ecs, e, target)
	case cfg.Balanced:
		hr, vr := f.HitZone()
		if !gamemath.InsideEllipse(target, centerOf(e), hr, vr) {
			return ResolveRangedShot(ecs, e, target)
		}
	}
	return ResolveMeleeStrike(ecs, e, target)
}

// SetMount is called by the world layer when the fighter mounts or leaves a
// vehicle. Mounting slows the fighter's actions for a short while.
func SetMount(e *donburi.Entry, mount cfg.MountState) {
	f := components.Fighter.Get(e)
	if f.Mount == mount {
		return
	}
	f.Mount = mount
	f.BoostActive = false
	if mount == cfg.OnVehicle {
		components.Timers.Get(e).Arm(components.TimerActionSlowdown, cfg.Combat.MountSlowdownSeconds)
	}
}

// SetClass switches the fighter to another class. Stats are re-derived at the
// current level, health keeps its value clamped to the new maximum, the
// magazine is refilled and the combo starts over. It returns false for the
// current class, an unknown class or a dead fighter.
func SetClass(e *donburi.Entry, class cfg.FighterClass) bool {
	if class < 0 || class >= cfg.ClassCount || !isAlive(e) {
		return false
	}
	f := components.Fighter.Get(e)
	if f.Class == class {
		return false
	}

	f.Class = class
	f.Stats = cfg.StatsFor(class, f.Level)
	classCfg := f.ClassConfig()
	f.Ammo = classCfg.MagazineSize
	f.Fuel = gamemath.ClampFloat(f.Fuel, 0, classCfg.FuelCapacity)
	if !classCfg.HasBoostToggle {
		f.BoostToggle = false
	}

	hp := components.Health.Get(e)
	hp.Max = f.Stats.MaxHealth
	hp.Apply(0)

	timers := components.Timers.Get(e)
	timers.Clear(components.TimerReload)
	timers.Clear(components.TimerComboWindow)
	timers.Clear(components.TimerComboRest)
	components.Combo.Get(e).Reset()
	return true
}
