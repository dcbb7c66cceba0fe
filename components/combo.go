package components

import (
	"github.com/automoto/kinetic-brawl/config"
	"github.com/yohamta/donburi"
)

// ComboPhase is the coarse state of the strike chain
type ComboPhase int

const (
	ComboIdle ComboPhase = iota
	ComboStriking
	ComboRest
)

func (p ComboPhase) String() string {
	switch p {
	case ComboIdle:
		return "Idle"
	case ComboStriking:
		return "Striking"
	case ComboRest:
		return "Rest"
	}
	return "Unknown"
}

// Strike describes the strike the tracker just accepted
type Strike struct {
	Index       int
	Multiplier  float64
	IsFinisher  bool
	Knockback   bool
	ApplyStun   bool
	StunSeconds float64
}

// ComboData tracks one fighter's progress toward the class finisher.
type ComboData struct {
	Phase ComboPhase
	Index int

	connected        bool // a strike of the current run hit something
	finisherResolved bool
}

// Advance accepts an attack input. It returns false while resting.
// The caller arms TimerComboWindow after a regular strike and
// TimerComboRest after the finisher.
func (c *ComboData) Advance(cfg config.ComboConfig) (Strike, bool) {
	if c.Phase == ComboRest || cfg.FinisherIndex < 1 {
		return Strike{}, false
	}

	c.Index++
	if c.Index > cfg.FinisherIndex {
		c.Index = cfg.FinisherIndex
	}

	s := Strike{
		Index:      c.Index,
		Multiplier: 1.0,
		IsFinisher: c.Index == cfg.FinisherIndex,
	}
	if c.Index-1 < len(cfg.Multipliers) {
		s.Multiplier = cfg.Multipliers[c.Index-1]
	}

	if s.IsFinisher {
		s.Knockback = true
		if cfg.FinisherStunSeconds > 0 {
			s.ApplyStun = true
			s.StunSeconds = cfg.FinisherStunSeconds
		}
		c.Phase = ComboRest
		c.finisherResolved = true
	} else {
		if cfg.StunStrike > 0 && c.Index == cfg.StunStrike {
			s.ApplyStun = true
			s.StunSeconds = cfg.StunSeconds
		}
		c.Phase = ComboStriking
	}
	return s, true
}

// MarkConnected records that the current strike hit at least one target.
// Only strikes before the finisher count toward empowerment.
func (c *ComboData) MarkConnected() {
	if c.Phase == ComboStriking {
		c.connected = true
	}
}

// Connected reports whether any strike before the finisher hit.
func (c *ComboData) Connected() bool {
	return c.connected
}

// ConsumeEmpowerment returns true once per run, after the finisher resolved
// in a run that connected. The connected flag is cleared on grant.
func (c *ComboData) ConsumeEmpowerment() bool {
	if !c.finisherResolved {
		return false
	}
	c.finisherResolved = false
	if !c.connected {
		return false
	}
	c.connected = false
	return true
}

// ExpireWindow drops the chain when no follow-up arrived in time.
func (c *ComboData) ExpireWindow() {
	if c.Phase == ComboStriking {
		c.Reset()
	}
}

// EndRest finishes the post-finisher cooldown.
func (c *ComboData) EndRest() {
	if c.Phase == ComboRest {
		c.Reset()
	}
}

// Reset returns the tracker to Idle.
func (c *ComboData) Reset() {
	c.Phase = ComboIdle
	c.Index = 0
	c.connected = false
	c.finisherResolved = false
}

var Combo = donburi.NewComponentType[ComboData]()
