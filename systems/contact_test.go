package systems

import (
	"testing"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/systems/factory"
)

func TestContactHurtsAndStunsFighter(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	factory.CreateTarget(e, "Grunt", 510, 500)

	tick(e, 1.0/60)

	hp := components.Health.Get(fighter)
	if !approx(hp.Current, hp.Max-cfg.Targets["Grunt"].ContactDamage) {
		t.Errorf("expected contact damage applied, got %v", hp.Current)
	}
	timers := components.Timers.Get(fighter)
	for _, id := range []components.TimerID{components.TimerStun, components.TimerKnockback, components.TimerInvincibility} {
		if !timers.Active(id) {
			t.Errorf("expected %v armed", id)
		}
	}
	if !fighter.HasComponent(components.Stunned) {
		t.Error("expected stunned state tag")
	}

	// Cooldown and invincibility keep the second tick harmless
	before := hp.Current
	tick(e, 1.0/60)
	if hp.Current != before {
		t.Errorf("expected no second hit, got %v", hp.Current)
	}
}

func TestContactAbsorbedByGuard(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	factory.CreateTarget(e, "Grunt", 510, 500)

	press(fighter, cfg.ActionBlock)
	tick(e, 1.0/60)

	hp := components.Health.Get(fighter)
	if hp.Current != hp.Max {
		t.Errorf("expected full negation, got %v", hp.Current)
	}
	block := components.Block.Get(fighter)
	if block.Intake() != 1 {
		t.Errorf("expected intake 1, got %d", block.Intake())
	}
	if block.Points() != cfg.Block.Points-cfg.Block.HitCost {
		t.Errorf("expected pool %v, got %v", cfg.Block.Points-cfg.Block.HitCost, block.Points())
	}
	texts := DamageTexts(e.World)
	if len(texts) != 1 || texts[0].Kind != components.DamageBlocked {
		t.Errorf("expected one blocked damage text, got %+v", texts)
	}
}

func TestGuardBreakStunLocksThenRecovers(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	target := factory.CreateTarget(e, "Grunt", 510, 500)

	tiny := cfg.Block
	tiny.Points = 1
	components.Block.SetValue(fighter, components.NewBlockData(tiny))
	block := components.Block.Get(fighter)

	press(fighter, cfg.ActionBlock)
	tick(e, 1.0/60)
	if block.State() != components.BlockBroken {
		t.Fatalf("expected guard broken, got %v", block.State())
	}
	if !components.Timers.Get(fighter).Active(components.TimerBlockStunLock) {
		t.Fatal("expected stun lock armed")
	}
	if block.Intake() != 1 {
		t.Errorf("expected breaking to keep intake, got %d", block.Intake())
	}

	components.Object.Get(target).MoveBy(vec(300, 0))

	press(fighter, cfg.ActionAttack)
	tick(e, 1.0/60)
	if idx := components.Combo.Get(fighter).Index; idx != 0 {
		t.Errorf("expected attack rejected while stun-locked, combo index %d", idx)
	}

	press(fighter)
	tick(e, cfg.Block.StunLockSeconds)
	if block.State() != components.BlockFatigued {
		t.Fatalf("expected fatigue after stun lock, got %v", block.State())
	}

	tick(e, cfg.Block.FatigueSeconds)
	if block.State() != components.BlockIdle || block.Points() != tiny.Points {
		t.Errorf("expected recovered guard, got %v with %v points", block.State(), block.Points())
	}
}

func TestProjectileBlockedOnlyFromFront(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	components.Block.Get(fighter).Activate()

	if !BlockProjectile(e, fighter, 10, vec(700, 500)) {
		t.Error("expected frontal projectile blocked")
	}
	hp := components.Health.Get(fighter)
	if hp.Current != hp.Max {
		t.Errorf("expected no damage from a blocked projectile, got %v", hp.Current)
	}

	if BlockProjectile(e, fighter, 10, vec(300, 500)) {
		t.Error("expected projectile from behind to get through")
	}
	if !approx(hp.Current, hp.Max-10) {
		t.Errorf("expected 10 damage from behind, got %v", hp.Current)
	}
}
