package ecs

import "testing"

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 同类型组件覆盖旧值
	AddComponent(em, id, &testPositionComponent{X: 7})
	if pos, _ := GetComponent[*testPositionComponent](em, id); pos.X != 7 {
		t.Errorf("Component should be replaced, got %+v", pos)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("missing component type should not be found")
	}
	if _, ok := GetComponent[*testPositionComponent](em, 999); ok {
		t.Error("unknown entity should not have components")
	}

	// 未创建的实体不能添加组件
	AddComponent(em, 999, &testPositionComponent{})
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 entity, got %d", em.EntityCount())
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if _, ok := GetComponent[*testPositionComponent](em, id); !ok {
		t.Error("Entity should still exist before cleanup")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestDestroyTwiceCountsOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected duplicate marks to remove once, got %d", removed)
	}
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Expected nothing left to remove, got %d", removed)
	}
}

// collectPositions 按 ForEach2 的遍历顺序收集同时拥有两种组件的实体
func collectPositions(em *EntityManager) []EntityID {
	var ids []EntityID
	ForEach2(em, func(id EntityID, _ *testPositionComponent, _ *testVelocityComponent) {
		ids = append(ids, id)
	})
	return ids
}

func TestForEach2(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})
	AddComponent(em, id3, &testPositionComponent{X: 3})

	got := collectPositions(em)
	if len(got) != 2 || got[0] != id1 || got[1] != id3 {
		t.Errorf("Expected [%d %d], got %v", id1, id3, got)
	}

	// 回调拿到的是组件指针本身
	ForEach2(em, func(_ EntityID, pos *testPositionComponent, vel *testVelocityComponent) {
		vel.VX = pos.X + 1
	})
	if vel, _ := GetComponent[*testVelocityComponent](em, id3); vel.VX != 4 {
		t.Errorf("component update lost, got %+v", vel)
	}
}

func TestForEach2SkipsEntitiesCreatedDuringIteration(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})
	AddComponent(em, id, &testVelocityComponent{})

	visited := 0
	ForEach2(em, func(_ EntityID, _ *testPositionComponent, _ *testVelocityComponent) {
		visited++
		child := em.CreateEntity()
		AddComponent(em, child, &testPositionComponent{})
		AddComponent(em, child, &testVelocityComponent{})
	})
	if visited != 1 {
		t.Errorf("Expected 1 visit, got %d", visited)
	}
	if n := len(collectPositions(em)); n != 2 {
		t.Errorf("Expected the new entity on the next pass, got %d entities", n)
	}
}

func TestQueryOrderFollowsCreation(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 50)
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		AddComponent(em, id, &testVelocityComponent{})
		ids = append(ids, id)
	}

	// 删除偶数位置的实体，剩余实体保持原有顺序
	for i := 0; i < len(ids); i += 2 {
		em.DestroyEntity(ids[i])
	}
	em.RemoveMarkedEntities()

	got := collectPositions(em)
	if len(got) != 25 {
		t.Fatalf("Expected 25 entities, got %d", len(got))
	}
	for i, id := range got {
		if id != ids[2*i+1] {
			t.Fatalf("order mismatch at %d: got %d, want %d", i, id, ids[2*i+1])
		}
	}
}
