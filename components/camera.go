package components

import (
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position  gamemath.Vec // Centre of the view in world space
	LookAhead gamemath.Vec // Current smoothed offset along the fighter's facing
	Settled   bool         // False until the first follow snaps onto the fighter
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks an active screen shake on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds
	Elapsed   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
