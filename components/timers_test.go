package components

import "testing"

func TestTimersFireOnceOnCrossing(t *testing.T) {
	var timers TimersData
	timers.Arm(TimerStun, 0.25)

	fired := 0
	fire := func(id TimerID) {
		if id != TimerStun {
			t.Errorf("expected stun to fire, got %v", id)
		}
		fired++
	}

	for i := 0; i < 30; i++ {
		timers.Advance(1.0/60, fire)
	}

	if fired != 1 {
		t.Errorf("expected exactly one transition, got %d", fired)
	}
	if timers.Remaining(TimerStun) != 0 {
		t.Errorf("expected stun clamped to 0, got %v", timers.Remaining(TimerStun))
	}
}

func TestTimersNeverNegative(t *testing.T) {
	var timers TimersData
	timers.Arm(TimerReload, 0.1)
	timers.Arm(TimerInvincibility, -3)
	timers.Advance(5, nil)

	for id := TimerID(0); id < TimerCount; id++ {
		if timers.Remaining(id) < 0 {
			t.Errorf("timer %v went negative: %v", id, timers.Remaining(id))
		}
	}
}

func TestTimersArmOverwrites(t *testing.T) {
	var timers TimersData
	timers.Arm(TimerRushCooldown, 1.0)
	timers.Arm(TimerRushCooldown, 0.5)
	if got := timers.Remaining(TimerRushCooldown); got != 0.5 {
		t.Errorf("expected re-arm to overwrite to 0.5, got %v", got)
	}
}

func TestTimersFireInIDOrder(t *testing.T) {
	var timers TimersData
	timers.Arm(TimerComboRest, 0.1)
	timers.Arm(TimerStrikeAnimation, 0.1)
	timers.Arm(TimerBlockStunLock, 0.1)

	var order []TimerID
	timers.Advance(0.2, func(id TimerID) { order = append(order, id) })

	expected := []TimerID{TimerStrikeAnimation, TimerBlockStunLock, TimerComboRest}
	if len(order) != len(expected) {
		t.Fatalf("expected %d transitions, got %d", len(expected), len(order))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("transition %d: expected %v, got %v", i, expected[i], order[i])
		}
	}
}

func TestTimersClearDoesNotFire(t *testing.T) {
	var timers TimersData
	timers.Arm(TimerStun, 0.1)
	timers.Clear(TimerStun)
	timers.Advance(1, func(id TimerID) {
		t.Errorf("cleared timer fired: %v", id)
	})
	if timers.Active(TimerStun) {
		t.Error("expected cleared timer to be inactive")
	}
}

func TestTimersEndOnExactDuration(t *testing.T) {
	var timers TimersData
	timers.Arm(TimerStun, 0.5)

	fired := 0
	for i := 0; i < 5; i++ {
		timers.Advance(0.1, func(TimerID) { fired++ })
	}

	if fired != 1 {
		t.Errorf("expected stun to fire on the fifth 0.1s tick, fired %d times", fired)
	}
	if timers.Active(TimerStun) || timers.Remaining(TimerStun) != 0 {
		t.Errorf("expected stun over, got %v remaining", timers.Remaining(TimerStun))
	}
}
