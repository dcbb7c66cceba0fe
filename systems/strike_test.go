package systems

import (
	"testing"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/systems/factory"
	"github.com/yohamta/donburi"
)

func TestStrikeAssignsOnePointHit(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	nearest := factory.CreateTarget(e, "Grunt", 540, 500)
	factory.CreateTarget(e, "Grunt", 545, 505)
	factory.CreateTarget(e, "Grunt", 538, 495)

	ev, ok := ResolveMeleeStrike(e, fighter, vec(540, 500))
	if !ok {
		t.Fatal("expected strike to resolve")
	}
	if len(ev.Hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(ev.Hits))
	}

	points := 0
	for _, h := range ev.Hits {
		if h.Point {
			points++
			if h.Target != nearest {
				t.Error("expected the nearest target to take the point hit")
			}
			if !approx(h.Damage, 10) {
				t.Errorf("expected point damage 10, got %v", h.Damage)
			}
		} else if !approx(h.Damage, 5) {
			t.Errorf("expected frontal damage 5, got %v", h.Damage)
		}
	}
	if points != 1 {
		t.Errorf("expected exactly one point hit, got %d", points)
	}
}

func TestStrikeFrontalNeedsFacingAndReach(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	behind := factory.CreateTarget(e, "Grunt", 440, 500)
	far := factory.CreateTarget(e, "Grunt", 600, 500)
	front := factory.CreateTarget(e, "Grunt", 550, 530)

	ev, ok := ResolveMeleeStrike(e, fighter, vec(530, 470))
	if !ok {
		t.Fatal("expected strike to resolve")
	}
	if len(ev.Hits) != 1 || ev.Hits[0].Target != front {
		t.Fatalf("expected only the frontal target hit, got %d hits", len(ev.Hits))
	}
	if ev.Hits[0].Point {
		t.Error("expected a frontal hit, not a point hit")
	}
	for _, untouched := range []*donburi.Entry{behind, far} {
		hp := components.Health.Get(untouched)
		if hp.Current != hp.Max {
			t.Errorf("expected target out of the arc untouched, got %v", hp.Current)
		}
	}
}

func TestCloseCombatClampsTargetOntoEllipse(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)

	ev, ok := ResolveMeleeStrike(e, fighter, vec(900, 500))
	if !ok {
		t.Fatal("expected strike to resolve")
	}
	if !approx(ev.Target.X, 580) || !approx(ev.Target.Y, 500) {
		t.Errorf("expected target clamped to (580, 500), got %+v", ev.Target)
	}
}

func TestFinisherGrantsEmpowermentOnce(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Soldier, 1, 500, 500)
	factory.CreateTarget(e, "Brute", 540, 500)
	finisher := cfg.Classes[cfg.Soldier].Combo.FinisherIndex

	grants := 0
	for i := 1; i <= finisher; i++ {
		ev, ok := ResolveMeleeStrike(e, fighter, vec(540, 500))
		if !ok {
			t.Fatalf("strike %d refused", i)
		}
		if len(ev.Hits) != 1 {
			t.Fatalf("strike %d: expected a hit, got %d", i, len(ev.Hits))
		}
		if ev.Strike.IsFinisher != (i == finisher) {
			t.Errorf("strike %d: unexpected finisher flag", i)
		}
		if ev.Empowered {
			grants++
		}
		tick(e, 0.35)
	}

	if grants != 1 {
		t.Errorf("expected empowerment granted exactly once, got %d", grants)
	}
	combo := components.Combo.Get(fighter)
	if combo.Connected() {
		t.Error("expected connected flag cleared after grant")
	}
	if combo.ConsumeEmpowerment() {
		t.Error("expected no second grant")
	}
	if !components.Timers.Get(fighter).Active(components.TimerEmpowered) {
		t.Error("expected empowered timer running")
	}
	if _, ok := ResolveMeleeStrike(e, fighter, vec(540, 500)); ok {
		t.Error("expected strike refused during combo rest")
	}
}

func TestFinisherAfterWhiffsDoesNotEmpower(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Soldier, 1, 500, 500)
	factory.CreateTarget(e, "Brute", 540, 500)
	finisher := cfg.Classes[cfg.Soldier].Combo.FinisherIndex

	for i := 1; i < finisher; i++ {
		ev, ok := ResolveMeleeStrike(e, fighter, vec(460, 500))
		if !ok {
			t.Fatalf("strike %d refused", i)
		}
		if len(ev.Hits) != 0 {
			t.Fatalf("strike %d: expected a whiff, got %d hits", i, len(ev.Hits))
		}
		tick(e, 0.35)
	}

	ev, ok := ResolveMeleeStrike(e, fighter, vec(540, 500))
	if !ok || !ev.Strike.IsFinisher {
		t.Fatalf("expected the finisher to resolve, got ok=%v %+v", ok, ev.Strike)
	}
	if len(ev.Hits) != 1 {
		t.Fatalf("expected the finisher to hit, got %d hits", len(ev.Hits))
	}
	if ev.Empowered {
		t.Error("expected no empowerment when strikes before the finisher all missed")
	}
	if components.Timers.Get(fighter).Active(components.TimerEmpowered) {
		t.Error("expected empowered timer idle")
	}
}

func TestComboResetsAfterRest(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	combo := components.Combo.Get(fighter)

	for i := 0; i < cfg.Classes[cfg.Racer].Combo.FinisherIndex; i++ {
		ResolveMeleeStrike(e, fighter, vec(540, 500))
		tick(e, 0.35)
	}
	if combo.Phase != components.ComboRest {
		t.Fatalf("expected Rest, got %v", combo.Phase)
	}

	tick(e, 1.0)
	if combo.Phase != components.ComboIdle || combo.Index != 0 {
		t.Errorf("expected Idle index 0 after rest, got %v index %d", combo.Phase, combo.Index)
	}
}

func TestStrikeDamageModifiers(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *donburi.Entry)
		expected float64
	}{
		{"plain", func(f *donburi.Entry) {}, 12.5},
		{"vehicle", func(f *donburi.Entry) { SetMount(f, cfg.OnVehicle) }, 3.125},
		{"vehicle boost", func(f *donburi.Entry) {
			SetMount(f, cfg.OnVehicle)
			components.Fighter.Get(f).BoostActive = true
		}, 6.25},
		{"empowered", func(f *donburi.Entry) {
			components.Timers.Get(f).Arm(components.TimerEmpowered, 2)
		}, 15.625},
		{"empowered nearly over", func(f *donburi.Entry) {
			components.Timers.Get(f).Arm(components.TimerEmpowered, 0.5)
		}, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestArena(t)
			fighter := factory.CreateFighter(e, cfg.Soldier, 1, 500, 500)
			factory.CreateTarget(e, "Brute", 540, 500)
			tt.setup(fighter)

			ev, ok := ResolveMeleeStrike(e, fighter, vec(540, 500))
			if !ok {
				t.Fatal("expected strike to resolve")
			}
			hit, ok := ev.PointHit()
			if !ok {
				t.Fatal("expected a point hit")
			}
			if !approx(hit.Damage, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, hit.Damage)
			}
		})
	}
}

func TestDeadTargetNotRevisited(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	target := factory.CreateTarget(e, "Skitter", 540, 500)
	components.Health.Get(target).Current = 5

	ev, _ := ResolveMeleeStrike(e, fighter, vec(540, 500))
	if len(ev.Hits) != 1 || !ev.Hits[0].Killed {
		t.Fatal("expected the strike to kill the target")
	}
	if !target.HasComponent(components.Death) {
		t.Error("expected death marker on the killed target")
	}

	tick(e, 0.35)
	ev, ok := ResolveMeleeStrike(e, fighter, vec(540, 500))
	if !ok {
		t.Fatal("expected second strike to resolve")
	}
	if len(ev.Hits) != 0 {
		t.Errorf("expected dead target skipped, got %d hits", len(ev.Hits))
	}

	tick(e, cfg.Combat.DeathSeconds+0.1)
	if target.Valid() {
		t.Error("expected dead target removed from the world")
	}
}

func TestHiddenFieldFindsNoTargets(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	factory.CreateTarget(e, "Grunt", 540, 500)

	arena, _ := components.Field.First(e.World)
	components.Field.Get(arena).EnemiesVisible = false

	ev, ok := ResolveMeleeStrike(e, fighter, vec(540, 500))
	if !ok {
		t.Fatal("expected the swing itself to resolve")
	}
	if len(ev.Hits) != 0 {
		t.Errorf("expected no hits with enemies hidden, got %d", len(ev.Hits))
	}
}

func TestStrikeEmitsDamageTextAndEffects(t *testing.T) {
	e := newTestArena(t)
	fighter := factory.CreateFighter(e, cfg.Racer, 1, 500, 500)
	factory.CreateTarget(e, "Grunt", 540, 500)

	var effects []CombatEffect
	CombatEffectEvent.Subscribe(e.World, func(w donburi.World, ev CombatEffect) {
		effects = append(effects, ev)
	})

	ResolveMeleeStrike(e, fighter, vec(540, 500))
	texts := DamageTexts(e.World)
	if len(texts) != 1 {
		t.Fatalf("expected one damage text, got %d", len(texts))
	}
	if texts[0].Kind != components.DamagePoint || texts[0].Color != cfg.DamageText.Point {
		t.Errorf("expected point colour, got %+v", texts[0])
	}

	tick(e, 1.0/60)
	if len(effects) == 0 {
		t.Error("expected combat effects delivered")
	}

	tick(e, cfg.Combat.DamageTextLifetime)
	if n := len(DamageTexts(e.World)); n != 0 {
		t.Errorf("expected damage text expired, got %d", n)
	}
}
