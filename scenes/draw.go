package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/systems"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"golang.org/x/image/colornames"
)

func drawBox(screen *ebiten.Image, obj *components.ObjectData, camera gamemath.Vec, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(obj.X-camera.X), float32(obj.Y-camera.Y),
		float32(obj.W), float32(obj.H), clr, false)
}

func drawTargets(w donburi.World, screen *ebiten.Image, camera gamemath.Vec) {
	tags.Target.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		t := components.Target.Get(e)
		clr := color.Color(colornames.Indianred)
		switch {
		case e.HasComponent(components.Death):
			clr = colornames.Dimgray
		case t.Stunned():
			clr = colornames.Gold
		case t.Bleed.Active():
			clr = colornames.Darkred
		}
		drawBox(screen, obj, camera, clr)

		hp := components.Health.Get(e)
		barWidth := float32(obj.W) * float32(hp.Current/hp.Max)
		vector.DrawFilledRect(screen,
			float32(obj.X-camera.X), float32(obj.Y-camera.Y-4),
			barWidth, 2, colornames.Limegreen, false)
	})
}

func drawFighter(w donburi.World, screen *ebiten.Image, camera gamemath.Vec) {
	e, ok := tags.Fighter.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(e)

	clr := color.Color(colornames.Steelblue)
	switch {
	case e.HasComponent(components.Death):
		clr = colornames.Dimgray
	case e.HasComponent(components.Guarding):
		clr = colornames.Lightskyblue
	case e.HasComponent(components.Striking), e.HasComponent(components.Rushing):
		clr = colornames.White
	}
	drawBox(screen, obj, camera, clr)

	if !cfg.Debug.DrawHitZones {
		return
	}
	// Hit zone ellipse bounds around the fighter centre
	f := components.Fighter.Get(e)
	c := obj.Center().Sub(camera)
	rx, ry := f.HitZone()
	vector.StrokeRect(screen, float32(c.X-rx), float32(c.Y-ry), float32(rx*2), float32(ry*2), 1, colornames.Yellow, false)
}

func drawDamageText(w donburi.World, screen *ebiten.Image, camera gamemath.Vec) {
	for _, text := range systems.DamageTexts(w) {
		pos := text.Position.Sub(camera)
		rise := text.Age * 20
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f", text.Value), int(pos.X), int(pos.Y-rise))
	}
}

func drawStatus(w donburi.World, screen *ebiten.Image) {
	s, ok := systems.FighterStatusOf(w)
	if !ok {
		return
	}
	line := fmt.Sprintf("%s  HP %.0f/%.0f  Block %.1f/%.0f (%s, intake %d)",
		s.Class, s.Health, s.Max, s.BlockPoints, s.BlockMax, s.BlockState, s.Intake)
	ebitenutil.DebugPrint(screen, line)

	line = fmt.Sprintf("Mode %s  Combo %d %s  Ammo %d  Fuel %.0f",
		s.Mode, s.ComboIndex, s.ComboPhase, s.Ammo, s.Fuel)
	ebitenutil.DebugPrintAt(screen, line, 0, 14)

	if s.Health <= 0 {
		ebitenutil.DebugPrintAt(screen, "Down. Press R to restart", 0, 28)
	}
}

func drawPause(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 160}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-18, h/2-8)
}
