package systems

import (
	"image/color"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func damageColor(kind components.DamageKind) color.RGBA {
	switch kind {
	case components.DamagePoint:
		return cfg.DamageText.Point
	case components.DamageFrontal:
		return cfg.DamageText.Frontal
	case components.DamageRush:
		return cfg.DamageText.Rush
	case components.DamageKinetic:
		return cfg.DamageText.Kinetic
	case components.DamageRanged:
		return cfg.DamageText.Ranged
	case components.DamageBleed:
		return cfg.DamageText.Bleed
	case components.DamageBlocked:
		return cfg.DamageText.Blocked
	}
	return cfg.DamageText.Hurt
}

func emitDamageText(w donburi.World, value float64, kind components.DamageKind, pos gamemath.Vec) {
	e, ok := tags.Arena.First(w)
	if !ok {
		return
	}
	feed := components.DamageFeed.Get(e)
	feed.Texts = append(feed.Texts, components.DamageTextData{
		Value:    value,
		Kind:     kind,
		Position: pos,
		Color:    damageColor(kind),
		Lifetime: cfg.Combat.DamageTextLifetime,
	})
}

// UpdateDamageText ages the damage records, floats them upward and drops
// the expired ones.
func UpdateDamageText(ecs *ecs.ECS) {
	e, ok := tags.Arena.First(ecs.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(e).Delta
	feed := components.DamageFeed.Get(e)

	kept := feed.Texts[:0]
	for _, text := range feed.Texts {
		text.Age += dt
		text.Position.Y -= cfg.DamageText.RiseRate * dt
		if !text.Expired() {
			kept = append(kept, text)
		}
	}
	feed.Texts = kept
}

// DamageTexts returns a copy of the live damage records.
func DamageTexts(w donburi.World) []components.DamageTextData {
	e, ok := tags.Arena.First(w)
	if !ok {
		return nil
	}
	feed := components.DamageFeed.Get(e)
	out := make([]components.DamageTextData, len(feed.Texts))
	copy(out, feed.Texts)
	return out
}
