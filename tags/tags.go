package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Target  = donburi.NewTag().SetName("Target")
	Arena   = donburi.NewTag().SetName("Arena")
)

// Resolv tags for broad-phase hit queries
const (
	ResolvFighter = "Fighter"
	ResolvTarget  = "Target"
	ResolvProbe   = "probe"
)
