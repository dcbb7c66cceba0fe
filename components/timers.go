package components

import "github.com/yohamta/donburi"

// TimerID names one of the fighter's independent countdowns.
type TimerID int

const (
	TimerStrikeAnimation TimerID = iota
	TimerMovementBuffer
	TimerBackpedalBuffer
	TimerRushActive
	TimerRushCooldown
	TimerInvincibility
	TimerStun
	TimerKnockback
	TimerBlockFatigue
	TimerBlockStunLock
	TimerActionSlowdown
	TimerReload
	TimerBoostToggle
	TimerEmpowered
	TimerComboWindow
	TimerComboRest
	TimerCount // Must be last - used for array sizing
)

var timerNames = [TimerCount]string{
	TimerStrikeAnimation: "strike-animation",
	TimerMovementBuffer:  "movement-buffer",
	TimerBackpedalBuffer: "backpedal-buffer",
	TimerRushActive:      "rush-active",
	TimerRushCooldown:    "rush-cooldown",
	TimerInvincibility:   "invincibility",
	TimerStun:            "stun",
	TimerKnockback:       "knockback-duration",
	TimerBlockFatigue:    "block-fatigue",
	TimerBlockStunLock:   "block-stun-lock",
	TimerActionSlowdown:  "combat-action-slowdown",
	TimerReload:          "reload",
	TimerBoostToggle:     "boost-toggle-cooldown",
	TimerEmpowered:       "empowered",
	TimerComboWindow:     "combo-window",
	TimerComboRest:       "combo-rest",
}

func (id TimerID) String() string {
	if id < 0 || id >= TimerCount {
		return "unknown"
	}
	return timerNames[id]
}

// TimersData holds every countdown of a fighter, in seconds. Timers never go
// negative and re-arming overwrites instead of accumulating.
type TimersData struct {
	remaining [TimerCount]float64
}

// timerEpsilon absorbs float drift from summing tick deltas, so a timer armed
// for 0.5 s ends on the fifth 0.1 s tick.
const timerEpsilon = 1e-9

// Arm starts (or restarts) a timer.
func (t *TimersData) Arm(id TimerID, seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	t.remaining[id] = seconds
}

// Clear cancels a timer without firing its transition.
func (t *TimersData) Clear(id TimerID) {
	t.remaining[id] = 0
}

// Remaining returns the seconds left on a timer.
func (t *TimersData) Remaining(id TimerID) float64 {
	return t.remaining[id]
}

// Active reports whether a timer is still counting down.
func (t *TimersData) Active(id TimerID) bool {
	return t.remaining[id] > 0
}

// Advance decrements every positive timer by dt and calls fire once for each
// timer that crossed from positive to zero, in TimerID order.
func (t *TimersData) Advance(dt float64, fire func(id TimerID)) {
	if dt <= 0 {
		return
	}
	for id := TimerID(0); id < TimerCount; id++ {
		if t.remaining[id] <= 0 {
			continue
		}
		t.remaining[id] -= dt
		if t.remaining[id] <= timerEpsilon {
			t.remaining[id] = 0
			if fire != nil {
				fire(id)
			}
		}
	}
}

// Snapshot copies the current countdowns for read-only presentation queries.
func (t *TimersData) Snapshot() [TimerCount]float64 {
	return t.remaining
}

var Timers = donburi.NewComponentType[TimersData]()
