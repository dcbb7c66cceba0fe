package components

import (
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Aim      gamemath.Vec // World-space aim target
}

// Action returns the press/hold/release state of an action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return ActionState{}
	}
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

// Press sets the held state of an action for the current tick.
func (in *InputData) Press(id cfg.ActionID, held bool) {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return
	}
	in.Current[id] = held
}

// Swap moves this tick's state into Previous. Called once the tick's
// systems have consumed the input.
func (in *InputData) Swap() {
	in.Previous = in.Current
}

var Input = donburi.NewComponentType[InputData]()
