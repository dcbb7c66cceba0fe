package gamemath

import "sort"

// ModifierStage fixes where a modifier sits in the damage chain.
type ModifierStage int

const (
	StageClassMode    ModifierStage = iota // ranged-on-foot, vehicle penalty/bonus
	StageSpecialState                      // empowered bonus
	StageCombo                             // combo strike multiplier
	StageKinetic                           // kinetic effectiveness (rush variants only)
)

// ModifierKind selects how a modifier combines with the running value.
type ModifierKind int

const (
	ModMul ModifierKind = iota
	ModAdd
)

// Modifier is one named adjustment of a damage value.
type Modifier struct {
	Stage ModifierStage
	Name  string
	Kind  ModifierKind
	Value float64
}

// ModifierSet is an ordered list of modifiers. Compose applies it by stage
// and, within a stage, in insertion order.
type ModifierSet []Modifier

// Mul appends a multiplicative modifier.
func (s ModifierSet) Mul(stage ModifierStage, name string, value float64) ModifierSet {
	return append(s, Modifier{Stage: stage, Name: name, Kind: ModMul, Value: value})
}

// Add appends an additive modifier.
func (s ModifierSet) Add(stage ModifierStage, name string, value float64) ModifierSet {
	return append(s, Modifier{Stage: stage, Name: name, Kind: ModAdd, Value: value})
}

// Has reports whether a modifier with the given name is present.
func (s ModifierSet) Has(name string) bool {
	for _, m := range s {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Compose combines base damage with the modifier chain. The input slice is
// never reordered; the result is never negative and is not rounded.
func Compose(base float64, mods ModifierSet) float64 {
	ordered := make(ModifierSet, len(mods))
	copy(ordered, mods)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Stage < ordered[j].Stage
	})

	dmg := base
	for _, m := range ordered {
		switch m.Kind {
		case ModMul:
			dmg *= m.Value
		case ModAdd:
			dmg += m.Value
		}
	}
	if dmg < 0 {
		return 0
	}
	return dmg
}
