package config

import (
	"fmt"
	"math"
	"strings"
)

// FighterClass identifies one of the closed set of playable fighter classes.
type FighterClass int

const (
	Racer FighterClass = iota
	Soldier
	Raptor
	ClassCount // Must be last - used for array sizing
)

func (c FighterClass) String() string {
	if c < 0 || c >= ClassCount {
		return "Unknown"
	}
	return Classes[c].Name
}

// ParseFighterClass resolves a class by name, ignoring case.
func ParseFighterClass(name string) (FighterClass, bool) {
	for c := FighterClass(0); c < ClassCount; c++ {
		if strings.EqualFold(Classes[c].Name, name) {
			return c, true
		}
	}
	return 0, false
}

// ComboConfig describes the strike chain of one fighter class
type ComboConfig struct {
	FinisherIndex       int       // Strike number that ends the chain
	Multipliers         []float64 // Damage multiplier per strike, index 0 = strike 1
	StunStrike          int       // Mid-chain strike that applies a short stun (0 = none)
	StunSeconds         float64   // Stun applied by StunStrike
	FinisherStunSeconds float64   // Stun applied by the finisher (0 = none)
	WindowSeconds       float64   // Time a strike stays live waiting for the next input
	RestSeconds         float64   // Cooldown after the finisher
}

// ClassConfig contains the per-class constant table. It is looked up once
// per fighter instead of switching on the class at every call site.
type ClassConfig struct {
	Name string

	// Stats at level 1 and growth per level after that
	BaseHealth     float64
	HealthPerLevel float64
	BaseMelee      float64
	MeleePerLevel  float64
	BaseRanged     float64
	RangedPerLevel float64
	MoveSpeed      float64 // pixels per second

	DashMultiplier float64 // Scales Combat.RushRange
	HitZoneRadius  float64 // Horizontal radius of the melee ellipse
	MagazineSize   int
	FuelCapacity   float64
	HasBoostToggle bool // Persistent boost vs ranged-set toggle

	Combo ComboConfig
}

// ClassStats are the derived stats of a fighter at a given level
type ClassStats struct {
	MaxHealth    float64
	MeleeDamage  float64
	RangedDamage float64
	MoveSpeed    float64
}

// CombatConfig contains combat-related configuration values. Durations are
// in seconds, distances in pixels.
type CombatConfig struct {
	// Melee strike
	CollisionThreshold     float64 // Radius around the target point that earns the point hit
	FrontalDamageRatio     float64 // Frontal hits use base * ratio before modifiers
	StrikeAnimationSeconds float64
	MovementBufferSeconds  float64 // Movement locked after a swing
	BackpedalBufferSeconds float64 // Moving against facing is slowed after a swing
	BackpedalSpeedScale    float64

	// Knockback applied to targets
	KnockbackSpeed    float64 // Launch speed in pixels per second
	KnockbackDuration float64

	// Rush
	RushRange                float64
	RushReach                float64 // Swept segment length as a multiple of the dash distance
	RushTolerance            float64
	RushDamageScale          float64
	RushActiveSeconds        float64
	RushCooldownSeconds      float64
	RushInvincibilitySeconds float64

	// Bleed applied by rushes
	BleedDuration    float64
	BleedDamageRatio float64 // Damage per second as a fraction of melee damage

	// Ranged
	RangedRange     float64
	RangedTolerance float64
	ReloadSeconds   float64

	// Enemy contact
	ContactRadius           float64
	ContactCooldown         float64
	FighterInvulnSeconds    float64
	FighterKnockbackSeconds float64
	FighterStunSeconds      float64

	// Empowered state
	EmpoweredSeconds float64

	// Mount
	MountSlowdownSeconds float64
	ActionSlowdownScale  float64 // Movement scale while ActionSlowdown is running
	BoostToggleSeconds   float64
	BoostFuelPerSecond   float64
	BoostSpeedScale      float64

	// Presentation records
	DamageTextLifetime float64
	DeathSeconds       float64
}

// ModifierConfig holds the multipliers of the damage modifier chain
type ModifierConfig struct {
	RangedOnFoot          float64
	Vehicle               float64
	VehicleBoost          float64
	Empowered             float64
	EmpoweredMinRemaining float64 // Empowered bonus applies only above this many seconds
}

// BlockConfig contains the block point pool and kinetic intake economy
type BlockConfig struct {
	Points          float64
	HitCost         float64
	ProjectileCost  float64
	IntakeCap       int
	StunLockSeconds float64
	FatigueSeconds  float64
	NegationRatio   float64 // 1.0 = blocked hits are fully negated

	// KineticTable maps intake (0..IntakeCap) to a damage multiplier.
	// Must be monotonically non-decreasing.
	KineticTable []float64
}

// TargetTypeConfig contains configuration for specific enemy types
type TargetTypeConfig struct {
	Name          string
	Health        float64
	ContactDamage float64
	Width         float64
	Height        float64
}

// ArenaConfig sizes the resolv space used for broad-phase hit queries
type ArenaConfig struct {
	Width    int
	Height   int
	CellSize int

	FighterSize float64
}

// CameraConfig contains camera follow and shake tuning. Rates are per second.
type CameraConfig struct {
	FollowRate        float64 // Exponential approach rate toward the fighter
	LookAheadDistance float64 // Offset along the fighter's facing, in pixels
	LookAheadRate     float64 // Approach rate of the look-ahead offset

	FinisherShake   float64 // Shake intensity in pixels
	GuardBreakShake float64
	KineticShake    float64
	ShakeSeconds    float64
}

// Config holds general host configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Classes [ClassCount]ClassConfig
var Combat CombatConfig
var Modifiers ModifierConfig
var Block BlockConfig
var Targets map[string]TargetTypeConfig
var Arena ArenaConfig
var Camera CameraConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitZones bool
	LogEffects   bool
}

// DefaultTargetType is used when a spawn names an unknown type
const DefaultTargetType = "Grunt"

// StatsFor derives the base stats of a class at the given level.
func StatsFor(class FighterClass, level int) ClassStats {
	if level < 1 {
		level = 1
	}
	c := Classes[class]
	growth := float64(level - 1)
	return ClassStats{
		MaxHealth:    c.BaseHealth + c.HealthPerLevel*growth,
		MeleeDamage:  c.BaseMelee + c.MeleePerLevel*growth,
		RangedDamage: c.BaseRanged + c.RangedPerLevel*growth,
		MoveSpeed:    c.MoveSpeed,
	}
}

// KineticMultiplier returns the effectiveness multiplier for an intake count.
func KineticMultiplier(intake int) float64 {
	if intake < 0 {
		intake = 0
	}
	if intake >= len(Block.KineticTable) {
		intake = len(Block.KineticTable) - 1
	}
	return Block.KineticTable[intake]
}

// Validate rejects malformed tuning before any fighter or hit zone is built.
func Validate() error {
	for i := range Classes {
		c := Classes[i]
		if !positive(c.HitZoneRadius) {
			return fmt.Errorf("class %s: hit zone radius must be positive, got %v", c.Name, c.HitZoneRadius)
		}
		if !positive(c.DashMultiplier) {
			return fmt.Errorf("class %s: dash multiplier must be positive, got %v", c.Name, c.DashMultiplier)
		}
		if c.Combo.FinisherIndex < 1 || len(c.Combo.Multipliers) != c.Combo.FinisherIndex {
			return fmt.Errorf("class %s: need one combo multiplier per strike up to the finisher", c.Name)
		}
	}
	if !positive(Combat.CollisionThreshold) || !positive(Combat.RushTolerance) || !positive(Combat.RangedTolerance) {
		return fmt.Errorf("combat: hit tolerances must be positive")
	}
	if !positive(Combat.RushRange) || !positive(Combat.RushReach) {
		return fmt.Errorf("combat: rush range %v and reach %v must be positive", Combat.RushRange, Combat.RushReach)
	}
	if !positive(Combat.KnockbackDuration) {
		return fmt.Errorf("combat: knockback duration must be positive, got %v", Combat.KnockbackDuration)
	}
	if !positive(Camera.FollowRate) || !positive(Camera.LookAheadRate) || !positive(Camera.ShakeSeconds) {
		return fmt.Errorf("camera: follow rate, look-ahead rate and shake duration must be positive")
	}
	if len(Block.KineticTable) != Block.IntakeCap+1 {
		return fmt.Errorf("block: kinetic table needs %d entries, got %d", Block.IntakeCap+1, len(Block.KineticTable))
	}
	for i := 1; i < len(Block.KineticTable); i++ {
		if Block.KineticTable[i] < Block.KineticTable[i-1] {
			return fmt.Errorf("block: kinetic table decreases at intake %d", i)
		}
	}
	if !positive(Block.Points) || !positive(Block.HitCost) {
		return fmt.Errorf("block: pool and hit cost must be positive")
	}
	if Arena.CellSize <= 0 || Arena.Width <= 0 || Arena.Height <= 0 {
		return fmt.Errorf("arena: invalid dimensions %dx%d cell %d", Arena.Width, Arena.Height, Arena.CellSize)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Classes = [ClassCount]ClassConfig{
		Racer: {
			Name:           "Racer",
			BaseHealth:     80,
			HealthPerLevel: 6,
			BaseMelee:      10,
			MeleePerLevel:  1.25,
			BaseRanged:     8,
			RangedPerLevel: 1,
			MoveSpeed:      180,
			DashMultiplier: 1.0,
			HitZoneRadius:  80,
			MagazineSize:   12,
			FuelCapacity:   100,
			Combo: ComboConfig{
				FinisherIndex:       3,
				Multipliers:         []float64{1.0, 1.1, 1.6},
				FinisherStunSeconds: 0.6,
				WindowSeconds:       0.5,
				RestSeconds:         0.6,
			},
		},
		Soldier: {
			Name:           "Soldier",
			BaseHealth:     120,
			HealthPerLevel: 10,
			BaseMelee:      12.5,
			MeleePerLevel:  1.5,
			BaseRanged:     10,
			RangedPerLevel: 1.25,
			MoveSpeed:      150,
			DashMultiplier: 0.85,
			HitZoneRadius:  90,
			MagazineSize:   8,
			FuelCapacity:   60,
			Combo: ComboConfig{
				FinisherIndex:       5,
				Multipliers:         []float64{1.0, 1.0, 1.15, 1.2, 1.75},
				StunStrike:          3,
				StunSeconds:         0.35,
				FinisherStunSeconds: 1.2,
				WindowSeconds:       0.6,
				RestSeconds:         0.8,
			},
		},
		Raptor: {
			Name:           "Raptor",
			BaseHealth:     95,
			HealthPerLevel: 8,
			BaseMelee:      11,
			MeleePerLevel:  1.4,
			BaseRanged:     12,
			RangedPerLevel: 1.5,
			MoveSpeed:      165,
			DashMultiplier: 1.15,
			HitZoneRadius:  85,
			MagazineSize:   6,
			FuelCapacity:   80,
			HasBoostToggle: true,
			Combo: ComboConfig{
				FinisherIndex:       4,
				Multipliers:         []float64{1.0, 1.05, 1.15, 1.5},
				StunStrike:          2,
				StunSeconds:         0.25,
				FinisherStunSeconds: 0.9,
				WindowSeconds:       0.55,
				RestSeconds:         0.7,
			},
		},
	}

	Combat = CombatConfig{
		CollisionThreshold:     24,
		FrontalDamageRatio:     0.5,
		StrikeAnimationSeconds: 0.3,
		MovementBufferSeconds:  0.15,
		BackpedalBufferSeconds: 0.4,
		BackpedalSpeedScale:    0.6,

		KnockbackSpeed:    240,
		KnockbackDuration: 0.35,

		RushRange:                300,
		RushReach:                1.5,
		RushTolerance:            24,
		RushDamageScale:          1.5,
		RushActiveSeconds:        0.2,
		RushCooldownSeconds:      1.2,
		RushInvincibilitySeconds: 0.3,

		BleedDuration:    3.0,
		BleedDamageRatio: 0.2,

		RangedRange:     480,
		RangedTolerance: 12,
		ReloadSeconds:   1.5,

		ContactRadius:           20,
		ContactCooldown:         1.0,
		FighterInvulnSeconds:    0.8,
		FighterKnockbackSeconds: 0.25,
		FighterStunSeconds:      0.25,

		EmpoweredSeconds: 6.0,

		MountSlowdownSeconds: 0.75,
		ActionSlowdownScale:  0.5,
		BoostToggleSeconds:   0.5,
		BoostFuelPerSecond:   20,
		BoostSpeedScale:      1.5,

		DamageTextLifetime: 0.8,
		DeathSeconds:       1.0,
	}

	Modifiers = ModifierConfig{
		RangedOnFoot:          0.90,
		Vehicle:               0.25,
		VehicleBoost:          0.50,
		Empowered:             1.25,
		EmpoweredMinRemaining: 1.0,
	}

	Block = BlockConfig{
		Points:          20,
		HitCost:         1,
		ProjectileCost:  1.5,
		IntakeCap:       20,
		StunLockSeconds: 1.5,
		FatigueSeconds:  2.5,
		NegationRatio:   1.0,
		KineticTable: []float64{
			1.00, 1.05, 1.10, 1.15, 1.20,
			1.25, 1.30, 1.40, 1.50, 1.60,
			1.70, 1.80, 1.90, 2.00, 2.10,
			2.20, 2.35, 2.50, 2.65, 2.80,
			3.00,
		},
	}

	Targets = map[string]TargetTypeConfig{
		"Grunt":   {Name: "Grunt", Health: 40, ContactDamage: 8, Width: 16, Height: 16},
		"Brute":   {Name: "Brute", Health: 90, ContactDamage: 15, Width: 24, Height: 24},
		"Skitter": {Name: "Skitter", Health: 20, ContactDamage: 5, Width: 12, Height: 12},
	}

	Arena = ArenaConfig{
		Width:       2048,
		Height:      2048,
		CellSize:    32,
		FighterSize: 16,
	}

	Camera = CameraConfig{
		FollowRate:        6,
		LookAheadDistance: 48,
		LookAheadRate:     3,

		FinisherShake:   3,
		GuardBreakShake: 4,
		KineticShake:    6,
		ShakeSeconds:    0.25,
	}

	Debug = DebugConfig{
		DrawHitZones: false,
		LogEffects:   false,
	}
}
