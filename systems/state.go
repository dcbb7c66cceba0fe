package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates mirrors the fighter's pose as a state tag for queries.
func UpdateStates(ecs *ecs.ECS) {
	var changed []*donburi.Entry
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState != state.PreviousState {
			changed = append(changed, e)
		}
	})

	for _, e := range changed {
		updateStateTags(e, components.State.Get(e))
	}
}

func updateStateTags(e *donburi.Entry, state *components.StateData) {
	removeAllStateTags(e)

	switch state.CurrentState {
	case cfg.Strike01, cfg.Strike02, cfg.Strike03, cfg.StrikeFinisher, cfg.Shoot:
		donburi.Add(e, components.Striking, &components.StrikingState{})
	case cfg.Rush, cfg.KineticRush:
		donburi.Add(e, components.Rushing, &components.RushingState{})
	case cfg.Guard, cfg.GuardImpact:
		donburi.Add(e, components.Guarding, &components.GuardingState{})
	case cfg.GuardBroken, cfg.Stunned, cfg.Knockback:
		donburi.Add(e, components.Stunned, &components.StunnedState{})
	}

	state.PreviousState = state.CurrentState
}

func removeAllStateTags(e *donburi.Entry) {
	if e.HasComponent(components.Striking) {
		donburi.Remove[components.StrikingState](e, components.Striking)
	}
	if e.HasComponent(components.Rushing) {
		donburi.Remove[components.RushingState](e, components.Rushing)
	}
	if e.HasComponent(components.Guarding) {
		donburi.Remove[components.GuardingState](e, components.Guarding)
	}
	if e.HasComponent(components.Stunned) {
		donburi.Remove[components.StunnedState](e, components.Stunned)
	}
}
