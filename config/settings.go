package config

import "golang.org/x/image/colornames"

// PreferencesConfig controls where combat preferences are persisted
type PreferencesConfig struct {
	AppName string
	ItemKey string
}

// Preferences is the global persistence configuration
var Preferences PreferencesConfig

func init() {
	Preferences = PreferencesConfig{
		AppName: "kinetic-brawl",
		ItemKey: "combat_preferences",
	}

	DamageText = DamageTextConfig{
		Point:    colornames.Orange,
		Frontal:  colornames.Yellow,
		Rush:     colornames.Orangered,
		Kinetic:  colornames.Deepskyblue,
		Ranged:   colornames.Lightgreen,
		Bleed:    colornames.Darkred,
		Blocked:  colornames.Lightsteelblue,
		Hurt:     colornames.Crimson,
		RiseRate: 30,
	}
}
