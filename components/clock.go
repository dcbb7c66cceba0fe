package components

import "github.com/yohamta/donburi"

// ClockData carries the tick's elapsed time in seconds
type ClockData struct {
	Delta   float64
	Elapsed float64
	Tick    int
}

var Clock = donburi.NewComponentType[ClockData]()

// FieldData is supplied by the world layer. EnemiesVisible is false where
// the current field hides its enemies, and no attack resolves there.
type FieldData struct {
	EnemiesVisible bool
	Spawned        int // Targets spawned so far, used as the next spawn order
}

var Field = donburi.NewComponentType[FieldData]()
