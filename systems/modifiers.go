package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
)

type attackKind int

const (
	attackMelee attackKind = iota
	attackRanged
	attackRush
	attackKinetic
)

// buildModifiers assembles the damage chain for one attack. Stage order is
// fixed by gamemath.Compose, so the order of the calls below does not matter.
func buildModifiers(f *components.FighterData, timers *components.TimersData, kind attackKind, comboMult float64, intake int) gamemath.ModifierSet {
	var mods gamemath.ModifierSet

	switch {
	case f.Mount == cfg.OnVehicle && f.BoostActive:
		mods = mods.Mul(gamemath.StageClassMode, "vehicle-boost", cfg.Modifiers.VehicleBoost)
	case f.Mount == cfg.OnVehicle:
		mods = mods.Mul(gamemath.StageClassMode, "vehicle", cfg.Modifiers.Vehicle)
	case kind == attackRanged:
		mods = mods.Mul(gamemath.StageClassMode, "ranged-on-foot", cfg.Modifiers.RangedOnFoot)
	}

	if timers.Remaining(components.TimerEmpowered) > cfg.Modifiers.EmpoweredMinRemaining {
		mods = mods.Mul(gamemath.StageSpecialState, "empowered", cfg.Modifiers.Empowered)
	}

	if kind == attackMelee && comboMult > 0 {
		mods = mods.Mul(gamemath.StageCombo, "combo", comboMult)
	}

	if kind == attackKinetic {
		mods = mods.Mul(gamemath.StageKinetic, "kinetic", cfg.KineticMultiplier(intake))
	}

	return mods
}
