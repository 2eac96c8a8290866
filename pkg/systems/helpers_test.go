package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/game"
)

// 测试用的默认视口：桌面端 800x600
const (
	testWidth  = 800.0
	testHeight = 600.0
)

// newTestSimulation 创建固定种子的模拟，mutate 可在创建前修改配置
func newTestSimulation(t *testing.T, mutate func(cfg *config.BloomConfig)) *Simulation {
	t.Helper()

	cfg := config.DefaultBloomConfig()
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}

	sim, err := NewSimulation(cfg, game.ViewportOptionsFromConfig(cfg, false), testWidth, testHeight, 1, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewSimulation() error: %v", err)
	}
	return sim
}

// tickUntil 推进模拟直到进入 target 阶段，返回所用帧数
func tickUntil(t *testing.T, sim *Simulation, target game.AnimationState, maxTicks int) int {
	t.Helper()
	for i := 1; i <= maxTicks; i++ {
		sim.Tick()
		if sim.State() == target {
			return i
		}
	}
	t.Fatalf("state %s not reached within %d ticks (stuck in %s)", target, maxTicks, sim.State())
	return 0
}

// advanceStateTo 把状态机逐级推进到 target
func advanceStateTo(t *testing.T, bs *game.BloomState, target game.AnimationState) {
	t.Helper()
	for bs.Current() < target {
		if !bs.Advance(bs.Current() + 1) {
			t.Fatalf("failed to advance from %s", bs.Current())
		}
	}
}

// branchTips 读取模拟中已记录的树梢
func branchTips(sim *Simulation) []components.BranchTip {
	tree, ok := ecs.GetComponent[*components.TreeComponent](sim.entityManager, sim.treeEntity)
	if !ok {
		return nil
	}
	return tree.Tips
}

// flyingCount 上一帧结束时存活的飘散花瓣数量
func flyingCount(sim *Simulation) int {
	return sim.petalSystem.Count(components.PetalLayerFlying)
}
