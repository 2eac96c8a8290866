package entities

import (
	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/ecs"
)

// NewHeartEntity 创建待机/下落阶段的爱心实体
func NewHeartEntity(em *ecs.EntityManager, x, y, size float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.HeartComponent{Size: size})
	return id
}

// NewTreeEntity 创建分形树实体
//
// 参数:
//   - rootX, rootY: 树根（爱心落地点）
//   - length: 树干长度
//   - width: 树干宽度
func NewTreeEntity(em *ecs.EntityManager, rootX, rootY, length, width float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TreeComponent{
		RootX:    rootX,
		RootY:    rootY,
		Length:   length,
		Width:    width,
		Segments: make([]components.TreeSegment, 0, 32),
		Tips:     make([]components.BranchTip, 0, 16),
	})
	return id
}
