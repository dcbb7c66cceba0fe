package systems

import (
	"math"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// approach returns the share of the remaining distance covered in dt at the
// given per-second rate.
func approach(rate, dt float64) float64 {
	return 1 - math.Exp(-rate*dt)
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	dt := deltaTime(e.World)

	fighterEntry, ok := tags.Fighter.First(e.World)
	if !ok {
		return
	}
	f := components.Fighter.Get(fighterEntry)
	center := components.Object.Get(fighterEntry).Center()

	// Look-ahead only tracks a live fighter; it freezes once they go down
	if !fighterEntry.HasComponent(components.Death) {
		want := f.Facing.Scale(cfg.Camera.LookAheadDistance)
		camera.LookAhead = camera.LookAhead.Add(want.Sub(camera.LookAhead).Scale(approach(cfg.Camera.LookAheadRate, dt)))
	}

	// Keep the arena filling the screen
	halfW := float64(cfg.C.Width) / 2
	halfH := float64(cfg.C.Height) / 2
	target := center.Add(camera.LookAhead)
	target.X = gamemath.ClampFloat(target.X, halfW, math.Max(halfW, float64(cfg.Arena.Width)-halfW))
	target.Y = gamemath.ClampFloat(target.Y, halfH, math.Max(halfH, float64(cfg.Arena.Height)-halfH))

	if !camera.Settled {
		camera.Position = target
		camera.Settled = true
	} else {
		camera.Position = camera.Position.Add(target.Sub(camera.Position).Scale(approach(cfg.Camera.FollowRate, dt)))
	}

	updateScreenShake(cameraEntry, dt)
}

// updateScreenShake decays an active shake and removes it once elapsed.
func updateScreenShake(cameraEntry *donburi.Entry, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake, keeping a stronger one already running.
func TriggerScreenShake(w donburi.World, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity*(1-shake.Elapsed/shake.Duration) {
			*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
		}
		return
	}
	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// shakeOnImpact maps heavy combat effects onto camera shake.
func shakeOnImpact(w donburi.World, ev CombatEffect) {
	switch {
	case ev.Sound == cfg.SoundKineticRush:
		TriggerScreenShake(w, cfg.Camera.KineticShake, cfg.Camera.ShakeSeconds)
	case ev.Effect == cfg.EffectGuardShatter:
		TriggerScreenShake(w, cfg.Camera.GuardBreakShake, cfg.Camera.ShakeSeconds)
	case ev.Effect == cfg.EffectFinisherBurst:
		TriggerScreenShake(w, cfg.Camera.FinisherShake, cfg.Camera.ShakeSeconds)
	}
}

// CameraOffset returns the top-left of the view in world space, shake
// included.
func CameraOffset(w donburi.World) gamemath.Vec {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return gamemath.Vec{}
	}
	camera := components.Camera.Get(cameraEntry)
	pos := camera.Position

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		strength := shake.Intensity * (1 - shake.Elapsed/shake.Duration)
		phase := shake.Elapsed * 60
		pos.X += math.Sin(phase*1.1) * strength
		pos.Y += math.Cos(phase*1.3) * strength
	}
	return pos.Sub(gamemath.Vec{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2})
}
