package components

import (
	"github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	Class config.FighterClass
	Level int
	Stats config.ClassStats // Derived once from the class table

	Facing gamemath.Vec // Unit vector of the last aim or movement
	Mount  config.MountState

	BoostActive bool // Vehicle speed boost running
	BoostToggle bool // Boost-vs-ranged toggle, only meaningful with HasBoostToggle

	Ammo int
	Fuel float64
}

// ClassConfig returns the constant table entry for the fighter's class.
func (f *FighterData) ClassConfig() *config.ClassConfig {
	return &config.Classes[f.Class]
}

// HitZone returns the horizontal and vertical radii of the melee ellipse.
func (f *FighterData) HitZone() (float64, float64) {
	hr := f.ClassConfig().HitZoneRadius
	return hr, gamemath.VerticalRadius(hr)
}

// DashDistance is the class-scaled rush travel range.
func (f *FighterData) DashDistance() float64 {
	return config.Combat.RushRange * f.ClassConfig().DashMultiplier
}

var Fighter = donburi.NewComponentType[FighterData]()
