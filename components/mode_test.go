package components

import (
	"testing"

	"github.com/automoto/kinetic-brawl/config"
)

func TestModeOverrideForcesRanged(t *testing.T) {
	m := ModeData{Persisted: config.CloseCombat}
	m.OverrideHeld = true
	if got := m.Effective(false, false, false); got != config.Ranged {
		t.Errorf("expected Ranged while override held, got %v", got)
	}
	m.OverrideHeld = false
	if got := m.Effective(false, false, false); got != config.CloseCombat {
		t.Errorf("expected persisted mode after release, got %v", got)
	}
}

func TestModeBoostToggleSuppressesOverride(t *testing.T) {
	m := ModeData{Persisted: config.Balanced, OverrideHeld: true}

	tests := []struct {
		name      string
		hasToggle bool
		toggle    bool
		boost     bool
		expected  config.CombatMode
	}{
		{"no toggle class", false, true, true, config.Ranged},
		{"toggle set to ranged", true, false, true, config.Ranged},
		{"boost not running", true, true, false, config.Ranged},
		{"boost running", true, true, true, config.Balanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Effective(tt.hasToggle, tt.toggle, tt.boost); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestModeChangeBufferedWhileBusy(t *testing.T) {
	m := ModeData{Persisted: config.CloseCombat}

	if m.RequestMode(config.Ranged, true) {
		t.Error("expected busy request to be buffered")
	}
	if m.Persisted != config.CloseCombat {
		t.Errorf("expected mode unchanged mid-swing, got %v", m.Persisted)
	}
	if !m.ApplyPending() {
		t.Error("expected pending change to apply")
	}
	if m.Persisted != config.Ranged {
		t.Errorf("expected Ranged, got %v", m.Persisted)
	}
	if m.ApplyPending() {
		t.Error("expected nothing left pending")
	}
}
