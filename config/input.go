package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionBlock
	ActionRush
	ActionKineticRush
	ActionRangedOverride
	ActionCycleMode
	ActionBoostToggle
	ActionVehicleBoost
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:           "none",
	ActionMoveLeft:       "move_left",
	ActionMoveRight:      "move_right",
	ActionMoveUp:         "move_up",
	ActionMoveDown:       "move_down",
	ActionAttack:         "attack",
	ActionBlock:          "block",
	ActionRush:           "rush",
	ActionKineticRush:    "kinetic_rush",
	ActionRangedOverride: "ranged_override",
	ActionCycleMode:      "cycle_mode",
	ActionBoostToggle:    "boost_toggle",
	ActionVehicleBoost:   "vehicle_boost",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
