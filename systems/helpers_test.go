package systems

import (
	"math"
	"testing"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestArena(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e)
	AddCombatSystems(e)
	return e
}

func tick(e *ecs.ECS, dt float64) {
	AdvanceClock(e.World, dt)
	e.Update()
}

// press replaces the fighter's held actions for the next tick.
func press(fighter *donburi.Entry, held ...cfg.ActionID) {
	in := components.Input.Get(fighter)
	in.Swap()
	in.Current = [cfg.ActionCount]bool{}
	for _, id := range held {
		in.Press(id, true)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func vec(x, y float64) gamemath.Vec {
	return gamemath.Vec{X: x, Y: y}
}
