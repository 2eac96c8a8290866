package systems

import (
	"math"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/utils"
)

// AdvancePetal 推进单片花瓣一帧（纯状态更新，不涉及绘制）
//
// 停留花瓣：等待延迟结束后沿三次缓出曲线飞向目标点，同时独立淡入。
// 飘散花瓣：向左匀速运动，竖直方向叠加随横坐标变化的正弦摆动，边旋转边淡出。
func AdvancePetal(p *components.PetalComponent, pos *components.PositionComponent) {
	if p.Detached {
		pos.X += p.VX
		pos.Y += p.VY + math.Sin(pos.X*config.PetalWobbleFrequency)*config.PetalWobbleAmplitude
		p.Angle += p.Spin
		p.Alpha = math.Max(0, p.Alpha-config.PetalFadeOutStep)
		return
	}

	if p.Delay > 0 {
		p.Delay--
		return
	}

	p.Progress = math.Min(1, p.Progress+config.PetalArrivalStep)
	eased := utils.EaseOutCubic(p.Progress)
	pos.X = utils.Lerp(p.StartX, p.TargetX, eased)
	pos.Y = utils.Lerp(p.StartY, p.TargetY, eased)
	p.Alpha = math.Min(1, p.Alpha+config.PetalFadeInStep)
}

// petalRef 一片存活花瓣的组件指针
type petalRef struct {
	petal *components.PetalComponent
	pos   *components.PositionComponent
}

// PetalSystem 推进所有花瓣，并移除完全淡出的飘散花瓣
//
// 每次 Update 顺便按层记录存活花瓣（保持创建顺序），
// 绘制时直接遍历这些列表，不再查询 EntityManager。
type PetalSystem struct {
	entityManager *ecs.EntityManager

	layers [3][]petalRef
}

// NewPetalSystem 创建花瓣系统
func NewPetalSystem(em *ecs.EntityManager) *PetalSystem {
	return &PetalSystem{entityManager: em}
}

// Update 推进所有花瓣一帧
// 返回本帧标记删除的飘散花瓣数量（实际删除由 RemoveMarkedEntities 完成）
func (s *PetalSystem) Update() int {
	for i := range s.layers {
		s.layers[i] = s.layers[i][:0]
	}

	expired := 0
	ecs.ForEach2(s.entityManager, func(id ecs.EntityID, petal *components.PetalComponent, pos *components.PositionComponent) {
		AdvancePetal(petal, pos)

		if petal.Detached && petal.Alpha <= 0 {
			s.entityManager.DestroyEntity(id)
			expired++
			return
		}
		if petal.Layer >= 0 && int(petal.Layer) < len(s.layers) {
			s.layers[petal.Layer] = append(s.layers[petal.Layer], petalRef{petal: petal, pos: pos})
		}
	})
	return expired
}

// Count 返回某一层存活的花瓣数量
func (s *PetalSystem) Count(layer components.PetalLayer) int {
	if layer < 0 || int(layer) >= len(s.layers) {
		return 0
	}
	return len(s.layers[layer])
}

// Each 按创建顺序遍历上一次 Update 后某一层存活的花瓣
func (s *PetalSystem) Each(layer components.PetalLayer, fn func(p *components.PetalComponent, pos *components.PositionComponent)) {
	if layer < 0 || int(layer) >= len(s.layers) {
		return
	}
	for _, ref := range s.layers[layer] {
		fn(ref.petal, ref.pos)
	}
}
