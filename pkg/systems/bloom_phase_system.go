package systems

import (
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/game"
)

// BloomPhaseSystem 推进生长进度和开花计时
type BloomPhaseSystem struct {
	state       *game.BloomState
	ticksToWind int
}

// NewBloomPhaseSystem 创建阶段推进系统
// ticksToWind: 开花阶段持续帧数，计数超过该值后起风
func NewBloomPhaseSystem(state *game.BloomState, ticksToWind int) *BloomPhaseSystem {
	return &BloomPhaseSystem{
		state:       state,
		ticksToWind: ticksToWind,
	}
}

// Update 执行一帧
//
// 生长进度到达满值时截断为满值再进入开花阶段，之后树保持完全展开。
// 开花计数只在以开花阶段开始的帧里增加。
func (s *BloomPhaseSystem) Update() {
	switch s.state.Current() {
	case game.StateGrowing:
		s.state.GrowthProgress += config.GrowthRate
		if s.state.GrowthProgress >= config.GrowthMax {
			s.state.GrowthProgress = config.GrowthMax
			s.state.Advance(game.StateBlooming)
		}
	case game.StateBlooming:
		s.state.BloomTicks++
		if s.state.BloomTicks > s.ticksToWind {
			s.state.Advance(game.StateWindy)
		}
	}
}
