package components

import (
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// BleedEffect deals damage over time until Remaining runs out
type BleedEffect struct {
	Remaining       float64
	DamagePerSecond float64
	Dealt           float64 // Damage dealt so far, reported when the bleed ends
}

func (b BleedEffect) Active() bool {
	return b.Remaining > 0 && b.DamagePerSecond > 0
}

type TargetData struct {
	TypeName      string // "Grunt", "Brute", "Skitter" etc...
	Order         int    // Spawn order, resolvers visit targets in this order
	ContactDamage float64

	Stun  float64 // Seconds of stun left
	Bleed BleedEffect

	KnockbackDir gamemath.Vec
	Knockback    *gween.Tween // Launch speed decaying to zero

	ContactCooldown float64
}

// Stunned reports whether the target is currently stunned.
func (t *TargetData) Stunned() bool {
	return t.Stun > 0
}

// ApplyStun overwrites the stun timer when the new stun is longer.
func (t *TargetData) ApplyStun(seconds float64) {
	if seconds > t.Stun {
		t.Stun = seconds
	}
}

// ApplyBleed replaces any running bleed.
func (t *TargetData) ApplyBleed(duration, dps float64) {
	t.Bleed = BleedEffect{Remaining: duration, DamagePerSecond: dps}
}

// Launch starts a knockback along dir, decaying from speed to zero.
func (t *TargetData) Launch(dir gamemath.Vec, speed, duration float64) {
	if duration <= 0 || speed <= 0 {
		return
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		return
	}
	t.KnockbackDir = dir
	t.Knockback = gween.New(float32(speed), 0, float32(duration), ease.OutQuad)
}

// StepKnockback advances the knockback tween and returns the displacement
// for this tick.
func (t *TargetData) StepKnockback(dt float64) gamemath.Vec {
	if t.Knockback == nil {
		return gamemath.Vec{}
	}
	speed, done := t.Knockback.Update(float32(dt))
	if done {
		t.Knockback = nil
	}
	return t.KnockbackDir.Scale(float64(speed) * dt)
}

var Target = donburi.NewComponentType[TargetData]()
