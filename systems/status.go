package systems

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
)

// FighterStatus is a read-only snapshot of the fighter for the presentation
// layer.
type FighterStatus struct {
	Class  cfg.FighterClass
	Health float64
	Max    float64

	BlockPoints float64
	BlockMax    float64
	Intake      int
	BlockState  components.BlockState

	ComboIndex int
	ComboPhase components.ComboPhase

	Mode     cfg.CombatMode
	Mount    cfg.MountState
	Pose     cfg.StateID
	Ammo     int
	Fuel     float64
	Timers   [components.TimerCount]float64
	Position gamemath.Vec
}

// FighterStatusOf returns the status of the first fighter in the world.
func FighterStatusOf(w donburi.World) (FighterStatus, bool) {
	e, ok := tags.Fighter.First(w)
	if !ok {
		return FighterStatus{}, false
	}

	f := components.Fighter.Get(e)
	hp := components.Health.Get(e)
	block := components.Block.Get(e)
	combo := components.Combo.Get(e)
	mode := components.Mode.Get(e)
	timers := components.Timers.Get(e)

	s := FighterStatus{
		Class:       f.Class,
		Health:      hp.Current,
		Max:         hp.Max,
		BlockPoints: block.Points(),
		BlockMax:    block.MaxPoints,
		Intake:      block.Intake(),
		BlockState:  block.State(),
		ComboIndex:  combo.Index,
		ComboPhase:  combo.Phase,
		Mode:        mode.Effective(f.ClassConfig().HasBoostToggle, f.BoostToggle, f.BoostActive),
		Mount:       f.Mount,
		Pose:        components.State.Get(e).CurrentState,
		Ammo:        f.Ammo,
		Fuel:        f.Fuel,
		Timers:      timers.Snapshot(),
	}
	s.Position = centerOf(e)
	return s, true
}
