package components

import (
	"github.com/automoto/kinetic-brawl/config"
	"github.com/yohamta/donburi"
)

// BlockState is the guard sub-machine of a fighter
type BlockState int

const (
	BlockIdle BlockState = iota
	BlockActive
	BlockFatigued
	BlockBroken
)

func (s BlockState) String() string {
	switch s {
	case BlockIdle:
		return "Idle"
	case BlockActive:
		return "Active"
	case BlockFatigued:
		return "Fatigued"
	case BlockBroken:
		return "Broken"
	}
	return "Unknown"
}

// BlockData is the block point pool and the kinetic intake it feeds.
// Fields are private so the pool only changes through the methods below.
type BlockData struct {
	state  BlockState
	points float64
	intake int

	MaxPoints      float64
	HitCost        float64
	ProjectileCost float64
	IntakeCap      int
	NegationRatio  float64
}

// NewBlockData returns a full, idle pool.
func NewBlockData(cfg config.BlockConfig) BlockData {
	return BlockData{
		state:          BlockIdle,
		points:         cfg.Points,
		MaxPoints:      cfg.Points,
		HitCost:        cfg.HitCost,
		ProjectileCost: cfg.ProjectileCost,
		IntakeCap:      cfg.IntakeCap,
		NegationRatio:  cfg.NegationRatio,
	}
}

// Activate raises the guard. It fails while broken or fatigued.
func (b *BlockData) Activate() bool {
	switch b.state {
	case BlockBroken, BlockFatigued:
		return false
	}
	b.state = BlockActive
	return true
}

// Deactivate lowers the guard. Broken and fatigued guards are unaffected.
func (b *BlockData) Deactivate() {
	if b.state == BlockActive {
		b.state = BlockIdle
	}
}

// ProcessAttack absorbs a melee hit while the guard is up and reports
// whether the incoming damage is fully negated.
func (b *BlockData) ProcessAttack(incoming float64) bool {
	if b.state != BlockActive {
		return false
	}
	b.absorb(b.HitCost)
	return b.negates(incoming)
}

// ProcessProjectileBlock absorbs a projectile arriving from the front.
func (b *BlockData) ProcessProjectileBlock(incoming float64, fromFront bool) bool {
	if b.state != BlockActive || !fromFront {
		return false
	}
	b.absorb(b.ProjectileCost)
	return b.negates(incoming)
}

// Residual is the damage that gets through an absorbed hit.
func (b *BlockData) Residual(incoming float64) float64 {
	r := incoming * (1 - b.NegationRatio)
	if r < 0 {
		return 0
	}
	return r
}

// PerformKineticStrike spends the whole intake. The pool is emptied and the
// guard is forced into fatigue. It returns the consumed intake.
func (b *BlockData) PerformKineticStrike() (int, bool) {
	if b.intake <= 0 || b.state == BlockFatigued || b.state == BlockBroken {
		return 0, false
	}
	spent := b.intake
	b.intake = 0
	b.points = 0
	b.state = BlockFatigued
	return spent, true
}

// IsStunLocked reports whether the broken guard currently locks all actions.
func (b *BlockData) IsStunLocked() bool {
	return b.state == BlockBroken
}

// EndStunLock moves a broken guard into fatigue.
func (b *BlockData) EndStunLock() bool {
	if b.state != BlockBroken {
		return false
	}
	b.state = BlockFatigued
	return true
}

// Recover ends fatigue and refills the pool.
func (b *BlockData) Recover() bool {
	if b.state != BlockFatigued {
		return false
	}
	b.state = BlockIdle
	b.points = b.MaxPoints
	return true
}

func (b *BlockData) Points() float64   { return b.points }
func (b *BlockData) Intake() int       { return b.intake }
func (b *BlockData) State() BlockState { return b.state }

func (b *BlockData) absorb(cost float64) {
	b.points -= cost
	if b.points < 0 {
		b.points = 0
	}
	if b.intake < b.IntakeCap {
		b.intake++
	}
	if b.points <= 0 {
		b.state = BlockBroken
	}
}

func (b *BlockData) negates(incoming float64) bool {
	return incoming <= 0 || b.NegationRatio >= 1
}

var Block = donburi.NewComponentType[BlockData]()
