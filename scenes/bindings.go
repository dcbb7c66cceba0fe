package scenes

import (
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps each action to the keys that hold it
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionMoveUp:         {ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionMoveDown:       {ebiten.KeyS, ebiten.KeyArrowDown},
	cfg.ActionAttack:         {ebiten.KeyJ},
	cfg.ActionBlock:          {ebiten.KeyK},
	cfg.ActionRush:           {ebiten.KeyL},
	cfg.ActionKineticRush:    {ebiten.KeySemicolon},
	cfg.ActionRangedOverride: {ebiten.KeyShiftLeft},
	cfg.ActionCycleMode:      {ebiten.KeyTab},
	cfg.ActionBoostToggle:    {ebiten.KeyB},
	cfg.ActionVehicleBoost:   {ebiten.KeySpace},
}

// mouseBindings lets the mouse drive the two main combat actions
var mouseBindings = map[cfg.ActionID]ebiten.MouseButton{
	cfg.ActionAttack: ebiten.MouseButtonLeft,
	cfg.ActionBlock:  ebiten.MouseButtonRight,
}

// pollInput copies this frame's raw key state into the fighter's input and
// converts the cursor into a world-space aim point.
func pollInput(in *components.InputData, camera gamemath.Vec) {
	in.Swap()
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		held := false
		for _, key := range keyBindings[id] {
			if ebiten.IsKeyPressed(key) {
				held = true
				break
			}
		}
		if button, ok := mouseBindings[id]; ok && ebiten.IsMouseButtonPressed(button) {
			held = true
		}
		in.Press(id, held)
	}

	cx, cy := ebiten.CursorPosition()
	in.Aim = camera.Add(gamemath.Vec{X: float64(cx), Y: float64(cy)})
}
