package config

import "image/color"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Offense
	SoundStrike
	SoundFinisher
	SoundRush
	SoundKineticRush
	SoundShot
	SoundReload
	SoundHit
	// Defense
	SoundBlock
	SoundGuardBreak
	SoundHurt
	SoundEmpowered
	SoundDeath
)

// EffectID represents a logical visual effect the presentation may spawn
type EffectID int

const (
	EffectNone EffectID = iota
	EffectHitSpark
	EffectFinisherBurst
	EffectRushTrail
	EffectBleed
	EffectGuardSpark
	EffectGuardShatter
	EffectEmpoweredAura
	EffectMuzzleFlash
)

// DamageTextConfig colors the floating damage numbers by hit type
type DamageTextConfig struct {
	Point    color.RGBA
	Frontal  color.RGBA
	Rush     color.RGBA
	Kinetic  color.RGBA
	Ranged   color.RGBA
	Bleed    color.RGBA
	Blocked  color.RGBA
	Hurt     color.RGBA
	RiseRate float64 // pixels per second
}

// DamageText is the global damage text configuration
var DamageText DamageTextConfig
