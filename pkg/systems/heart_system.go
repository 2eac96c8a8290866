package systems

import (
	"log"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/game"
)

// HeartSystem 处理爱心下落
type HeartSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BloomState
	viewport      *game.ViewportState
	heartEntity   ecs.EntityID
}

// NewHeartSystem 创建爱心下落系统
func NewHeartSystem(em *ecs.EntityManager, state *game.BloomState, viewport *game.ViewportState, heartEntity ecs.EntityID) *HeartSystem {
	return &HeartSystem{
		entityManager: em,
		state:         state,
		viewport:      viewport,
		heartEntity:   heartEntity,
	}
}

// Update 下落阶段按恒定加速度移动爱心，落地后进入生长阶段
func (s *HeartSystem) Update() {
	if s.state.Current() != game.StateFalling {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.heartEntity)
	if !ok {
		return
	}
	heart, ok := ecs.GetComponent[*components.HeartComponent](s.entityManager, s.heartEntity)
	if !ok {
		return
	}

	heart.VY += config.HeartGravity
	pos.Y += heart.VY

	if pos.Y >= s.viewport.GroundY {
		pos.Y = s.viewport.GroundY
		s.state.GrowthProgress = 0
		s.state.Advance(game.StateGrowing)
		log.Printf("[HeartSystem] Heart landed at (%.1f, %.1f)", pos.X, pos.Y)
	}
}

// ResetToIdle 待机阶段把爱心放回视口中央，其余阶段不做任何事
func (s *HeartSystem) ResetToIdle() {
	if s.state.Current() != game.StateIdle {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.heartEntity)
	if !ok {
		return
	}
	pos.X, pos.Y = s.viewport.HeartIdlePosition()
}
