package components

import (
	"github.com/automoto/kinetic-brawl/config"
	"github.com/yohamta/donburi"
)

// ModeData is the fighter's combat mode selection. Changes requested while a
// swing or rush is resolving are held in pending until both finish.
type ModeData struct {
	Persisted    config.CombatMode
	OverrideHeld bool

	PreferencesDirty bool // Mode or boost toggle changed since the last save

	pending    config.CombatMode
	hasPending bool
}

// RequestMode switches the persisted mode now, or buffers the change when
// busy. It returns true when the mode changed immediately.
func (m *ModeData) RequestMode(mode config.CombatMode, busy bool) bool {
	if busy {
		m.pending = mode
		m.hasPending = true
		return false
	}
	m.hasPending = false
	if mode == m.Persisted {
		return false
	}
	m.Persisted = mode
	return true
}

// Pending returns the buffered mode, if any.
func (m *ModeData) Pending() (config.CombatMode, bool) {
	return m.pending, m.hasPending
}

// ApplyPending commits a buffered change. It returns true when the
// persisted mode actually changed.
func (m *ModeData) ApplyPending() bool {
	if !m.hasPending {
		return false
	}
	m.hasPending = false
	if m.pending == m.Persisted {
		return false
	}
	m.Persisted = m.pending
	return true
}

// Effective resolves the mode used for the next attack. Holding the override
// forces Ranged unless the class toggle is set to boost while the vehicle
// boost runs.
func (m *ModeData) Effective(hasBoostToggle, boostToggle, boostActive bool) config.CombatMode {
	if !m.OverrideHeld {
		return m.Persisted
	}
	if hasBoostToggle && boostToggle && boostActive {
		return m.Persisted
	}
	return config.Ranged
}

var Mode = donburi.NewComponentType[ModeData]()
