package components

import (
	"testing"

	"github.com/automoto/kinetic-brawl/config"
)

func TestBlockTwentyHitsBreaksGuard(t *testing.T) {
	block := NewBlockData(config.Block)
	if !block.Activate() {
		t.Fatal("expected guard to activate")
	}

	last := block.Points()
	for i := 0; i < 20; i++ {
		if !block.ProcessAttack(10) {
			t.Errorf("hit %d: expected full negation", i+1)
		}
		if block.Points() > last {
			t.Errorf("hit %d: pool increased from %v to %v", i+1, last, block.Points())
		}
		if block.Points() < 0 {
			t.Errorf("hit %d: pool went negative: %v", i+1, block.Points())
		}
		last = block.Points()
	}

	if block.Points() != 0 {
		t.Errorf("expected empty pool, got %v", block.Points())
	}
	if block.State() != BlockBroken {
		t.Errorf("expected Broken, got %v", block.State())
	}
	if block.Intake() != 20 {
		t.Errorf("expected intake 20, got %d", block.Intake())
	}
	if !block.IsStunLocked() {
		t.Error("expected stun lock while broken")
	}
}

func TestBlockIntakeCapped(t *testing.T) {
	cfg := config.Block
	cfg.Points = 100
	block := NewBlockData(cfg)
	block.Activate()

	for i := 0; i < 40; i++ {
		block.ProcessAttack(1)
	}
	if block.Intake() != cfg.IntakeCap {
		t.Errorf("expected intake capped at %d, got %d", cfg.IntakeCap, block.Intake())
	}
}

func TestBlockBrokenRecoveryCycle(t *testing.T) {
	cfg := config.Block
	cfg.Points = 2
	block := NewBlockData(cfg)
	block.Activate()
	block.ProcessAttack(5)
	block.ProcessAttack(5)

	if block.Activate() {
		t.Error("expected activation to fail while broken")
	}
	if !block.EndStunLock() || block.State() != BlockFatigued {
		t.Fatalf("expected Fatigued after stun lock, got %v", block.State())
	}
	if block.Intake() != 2 {
		t.Errorf("expected breaking to keep intake, got %d", block.Intake())
	}
	if block.Activate() {
		t.Error("expected activation to fail while fatigued")
	}
	if !block.Recover() || block.State() != BlockIdle {
		t.Fatalf("expected Idle after recovery, got %v", block.State())
	}
	if block.Points() != cfg.Points {
		t.Errorf("expected full pool %v, got %v", cfg.Points, block.Points())
	}
}

func TestBlockKineticStrikeConsumesIntake(t *testing.T) {
	block := NewBlockData(config.Block)

	if _, ok := block.PerformKineticStrike(); ok {
		t.Error("expected kinetic strike to need intake")
	}

	block.Activate()
	for i := 0; i < 5; i++ {
		block.ProcessAttack(1)
	}
	block.Deactivate()

	spent, ok := block.PerformKineticStrike()
	if !ok || spent != 5 {
		t.Fatalf("expected 5 intake spent, got %d ok=%v", spent, ok)
	}
	if block.Intake() != 0 || block.Points() != 0 {
		t.Errorf("expected intake and pool zeroed, got %d / %v", block.Intake(), block.Points())
	}
	if block.State() != BlockFatigued {
		t.Errorf("expected Fatigued, got %v", block.State())
	}
	if _, ok := block.PerformKineticStrike(); ok {
		t.Error("expected second kinetic strike to be refused")
	}
}

func TestBlockIgnoresHitsWhenLowered(t *testing.T) {
	block := NewBlockData(config.Block)
	if block.ProcessAttack(10) {
		t.Error("expected idle guard not to negate")
	}
	if block.Points() != config.Block.Points || block.Intake() != 0 {
		t.Error("expected idle guard to leave the pool untouched")
	}
}

func TestBlockProjectileNeedsFront(t *testing.T) {
	block := NewBlockData(config.Block)
	block.Activate()

	if block.ProcessProjectileBlock(10, false) {
		t.Error("expected projectile from behind to pass")
	}
	if !block.ProcessProjectileBlock(10, true) {
		t.Error("expected frontal projectile to be blocked")
	}
	want := config.Block.Points - config.Block.ProjectileCost
	if block.Points() != want {
		t.Errorf("expected pool %v, got %v", want, block.Points())
	}
}
