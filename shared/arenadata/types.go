// Package arenadata parses TMX arena layouts into spawn data.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package arenadata

// ArenaData holds the spawn layout parsed from a TMX arena file.
type ArenaData struct {
	Width   int // pixels
	Height  int
	Fighter *FighterSpawn
	Enemies []EnemySpawn
}

// FighterSpawn is the fighter's starting point and loadout.
type FighterSpawn struct {
	X, Y  float64
	Class string // "" keeps the caller's default
	Level int
}

// EnemySpawn places one target. Kind names an entry of config.Targets.
type EnemySpawn struct {
	X, Y float64
	Kind string
}
