package components

import (
	"github.com/automoto/kinetic-brawl/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // Seconds spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

type StrikingState struct{}
type RushingState struct{}
type GuardingState struct{}
type StunnedState struct{}

var Striking = donburi.NewComponentType[StrikingState]()
var Rushing = donburi.NewComponentType[RushingState]()
var Guarding = donburi.NewComponentType[GuardingState]()
var Stunned = donburi.NewComponentType[StunnedState]()
