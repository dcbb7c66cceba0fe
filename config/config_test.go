package config

import (
	"math"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsBadTuning(t *testing.T) {
	t.Run("non-positive hit zone", func(t *testing.T) {
		saved := Classes[Racer].HitZoneRadius
		defer func() { Classes[Racer].HitZoneRadius = saved }()

		Classes[Racer].HitZoneRadius = 0
		if err := Validate(); err == nil {
			t.Error("expected error for zero hit zone radius")
		}
		Classes[Racer].HitZoneRadius = math.NaN()
		if err := Validate(); err == nil {
			t.Error("expected error for NaN hit zone radius")
		}
	})

	t.Run("decreasing kinetic table", func(t *testing.T) {
		saved := Block.KineticTable
		defer func() { Block.KineticTable = saved }()

		table := append([]float64(nil), saved...)
		table[5] = 0.5
		Block.KineticTable = table
		if err := Validate(); err == nil {
			t.Error("expected error for decreasing kinetic table")
		}
	})

	t.Run("degenerate rush and knockback", func(t *testing.T) {
		saved := Combat
		defer func() { Combat = saved }()

		Combat.RushRange = 0
		if err := Validate(); err == nil {
			t.Error("expected error for zero rush range")
		}
		Combat = saved
		Combat.RushReach = math.NaN()
		if err := Validate(); err == nil {
			t.Error("expected error for NaN rush reach")
		}
		Combat = saved
		Combat.KnockbackDuration = -1
		if err := Validate(); err == nil {
			t.Error("expected error for negative knockback duration")
		}
	})

	t.Run("non-positive camera rates", func(t *testing.T) {
		saved := Camera
		defer func() { Camera = saved }()

		Camera.FollowRate = 0
		if err := Validate(); err == nil {
			t.Error("expected error for zero follow rate")
		}
		Camera = saved
		Camera.ShakeSeconds = math.Inf(1)
		if err := Validate(); err == nil {
			t.Error("expected error for infinite shake duration")
		}
	})

	t.Run("combo multipliers out of step", func(t *testing.T) {
		saved := Classes[Soldier].Combo.Multipliers
		defer func() { Classes[Soldier].Combo.Multipliers = saved }()

		Classes[Soldier].Combo.Multipliers = saved[:2]
		if err := Validate(); err == nil {
			t.Error("expected error when multipliers do not cover the chain")
		}
	})
}

func TestStatsForScalesWithLevel(t *testing.T) {
	base := StatsFor(Racer, 1)
	if base.MaxHealth != 80 || base.MeleeDamage != 10 {
		t.Errorf("expected level 1 racer 80 hp / 10 melee, got %v / %v", base.MaxHealth, base.MeleeDamage)
	}

	third := StatsFor(Racer, 3)
	if third.MaxHealth != 92 {
		t.Errorf("expected level 3 racer 92 hp, got %v", third.MaxHealth)
	}
	if third.MeleeDamage != 12.5 {
		t.Errorf("expected level 3 racer 12.5 melee, got %v", third.MeleeDamage)
	}

	if got := StatsFor(Racer, 0); got != base {
		t.Errorf("expected level 0 to clamp to level 1, got %+v", got)
	}
}

func TestKineticMultiplierClamps(t *testing.T) {
	if got := KineticMultiplier(-3); got != 1.0 {
		t.Errorf("expected 1.0 below zero intake, got %v", got)
	}
	if got := KineticMultiplier(8); got != 1.5 {
		t.Errorf("expected 1.5 at intake 8, got %v", got)
	}
	if got := KineticMultiplier(99); got != 3.0 {
		t.Errorf("expected cap value 3.0, got %v", got)
	}
}

func TestParseFighterClass(t *testing.T) {
	c, ok := ParseFighterClass("raptor")
	if !ok || c != Raptor {
		t.Errorf("expected Raptor, got %v (%v)", c, ok)
	}
	if _, ok := ParseFighterClass("pilot"); ok {
		t.Error("expected unknown class to be rejected")
	}
}
