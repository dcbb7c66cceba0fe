package components

import (
	"image/color"

	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DamageKind classifies a damage record for colouring
type DamageKind int

const (
	DamagePoint DamageKind = iota
	DamageFrontal
	DamageRush
	DamageKinetic
	DamageRanged
	DamageBleed
	DamageBlocked
	DamageHurt // Damage taken by the fighter
)

// DamageTextData is one floating damage number
type DamageTextData struct {
	Value    float64
	Kind     DamageKind
	Position gamemath.Vec
	Color    color.RGBA
	Lifetime float64
	Age      float64
}

// Expired reports whether the record has outlived its lifetime.
func (d DamageTextData) Expired() bool {
	return d.Age >= d.Lifetime
}

// DamageFeedData collects the damage text records for the presentation layer
type DamageFeedData struct {
	Texts []DamageTextData
}

var DamageFeed = donburi.NewComponentType[DamageFeedData]()
