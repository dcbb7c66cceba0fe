package gamemath

import (
	"math"
	"testing"
)

func TestComposeEmptyReturnsBase(t *testing.T) {
	for _, base := range []float64{0, 1, 12.5, 999.75} {
		if got := Compose(base, nil); got != base {
			t.Errorf("expected %v, got %v", base, got)
		}
	}
}

func TestComposeVehicleNoBoost(t *testing.T) {
	mods := ModifierSet{}.Mul(StageClassMode, "vehicle", 0.25)
	if got := Compose(12.5, mods); got != 3.125 {
		t.Errorf("expected 3.125, got %v", got)
	}
}

func TestComposeIsRepeatable(t *testing.T) {
	mods := ModifierSet{}.
		Mul(StageCombo, "combo", 1.75).
		Mul(StageClassMode, "vehicle_boost", 0.5).
		Mul(StageSpecialState, "empowered", 1.25).
		Mul(StageKinetic, "kinetic", 2.2)

	first := Compose(17.3, mods)
	second := Compose(17.3, mods)
	if first != second {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
	if mods[0].Name != "combo" {
		t.Errorf("expected caller's slice order untouched, got %s first", mods[0].Name)
	}
}

func TestComposeAppliesStagesInOrder(t *testing.T) {
	// An additive bonus in the combo stage must land after the class penalty
	// even when it was appended first.
	mods := ModifierSet{}.
		Add(StageCombo, "flat", 10).
		Mul(StageClassMode, "vehicle", 0.5)

	if got := Compose(20, mods); got != 20 {
		t.Errorf("expected (20*0.5)+10 = 20, got %v", got)
	}
}

func TestComposeNeverNegative(t *testing.T) {
	mods := ModifierSet{}.Add(StageCombo, "drain", -50)
	if got := Compose(10, mods); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestComposeFrontalHalvesBeforeChain(t *testing.T) {
	mods := ModifierSet{}.
		Mul(StageSpecialState, "empowered", 1.25).
		Mul(StageCombo, "combo", 1.2)

	point := Compose(20, mods)
	frontal := Compose(20*0.5, mods)
	if math.Abs(frontal-point/2) > 1e-12 {
		t.Errorf("expected frontal %v to be half of point %v", frontal, point)
	}
}
