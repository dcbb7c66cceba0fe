package config

// StateID selects the strike pose the presentation layer should show.
type StateID int

const (
	StateNone StateID = iota

	Idle
	Walk
	Strike01
	Strike02
	Strike03
	StrikeFinisher
	Rush
	KineticRush
	Shoot
	Guard
	GuardImpact
	GuardBroken
	Fatigued
	Stunned
	Knockback
	Die
)

// StateToName maps poses to the animation names the presentation layer loads
var StateToName = map[StateID]string{
	Idle:           "idle",
	Walk:           "walk",
	Strike01:       "strike01",
	Strike02:       "strike02",
	Strike03:       "strike03",
	StrikeFinisher: "strike_finisher",
	Rush:           "rush",
	KineticRush:    "kinetic_rush",
	Shoot:          "shoot",
	Guard:          "guard",
	GuardImpact:    "guard_impact",
	GuardBroken:    "guard_broken",
	Fatigued:       "fatigued",
	Stunned:        "stunned",
	Knockback:      "knockback",
	Die:            "die",
}

// StrikePose returns the pose for a combo strike index.
func StrikePose(index int, finisher bool) StateID {
	if finisher {
		return StrikeFinisher
	}
	switch (index - 1) % 3 {
	case 0:
		return Strike01
	case 1:
		return Strike02
	default:
		return Strike03
	}
}

// CombatMode is the persisted attack behavior of the fighter
type CombatMode int

const (
	CloseCombat CombatMode = iota
	Ranged
	Balanced
	CombatModeCount
)

func (m CombatMode) String() string {
	switch m {
	case CloseCombat:
		return "CloseCombat"
	case Ranged:
		return "Ranged"
	case Balanced:
		return "Balanced"
	}
	return "Unknown"
}

// Next cycles through the combat modes
func (m CombatMode) Next() CombatMode {
	return (m + 1) % CombatModeCount
}

// MountState describes whether the fighter is on foot or riding
type MountState int

const (
	OnFoot MountState = iota
	OnVehicle
)
