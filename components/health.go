package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Dead reports whether the entity has run out of health.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

// Apply subtracts damage (negative heals) and clamps to [0, Max].
// It returns the amount actually removed.
func (h *HealthData) Apply(damage float64) float64 {
	before := h.Current
	h.Current -= damage
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return before - h.Current
}

var Health = donburi.NewComponentType[HealthData]()
