package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 查询结果按实体创建顺序返回。花瓣按创建顺序叠加绘制，
// 如果使用 map 的随机遍历顺序，重叠的花瓣每帧都会闪烁。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 存活实体的创建顺序
	order []EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		order:             make([]EntityID, 0),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// EntityCount 返回当前存活（未被清理）的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// RemoveMarkedEntities 清理所有标记删除的实体
//
// 返回本次实际删除的实体数量（重复标记只计一次）
func (em *EntityManager) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; exists {
			delete(em.components, id)
			removed++
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	// 压缩顺序表，保持剩余实体的相对顺序
	alive := em.order[:0]
	for _, id := range em.order {
		if _, exists := em.components[id]; exists {
			alive = append(alive, id)
		}
	}
	em.order = alive

	return removed
}

// typeOf 返回泛型参数 T 对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[typeOf[T]()] = component
	}
}

// GetComponent 获取实体的特定类型组件，避免调用方做类型断言
//
// 用法: pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[typeOf[T]()]
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// ForEach2 按创建顺序遍历同时拥有组件 T1 和 T2 的实体
//
// 每个实体只查一次组件表，不分配结果切片。
// 回调中创建的实体本次不会被遍历到；删除请使用 DestroyEntity。
func ForEach2[T1, T2 any](em *EntityManager, fn func(id EntityID, c1 T1, c2 T2)) {
	t1, t2 := typeOf[T1](), typeOf[T2]()
	for _, id := range em.order {
		compMap := em.components[id]
		a, ok := compMap[t1]
		if !ok {
			continue
		}
		b, ok := compMap[t2]
		if !ok {
			continue
		}
		c1, ok1 := a.(T1)
		c2, ok2 := b.(T2)
		if ok1 && ok2 {
			fn(id, c1, c2)
		}
	}
}
