package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/game"
)

// CameraSystem 开花阶段的横向平移镜头
//
// 线性进度每帧增加 step，经三次缓入缓出后乘以视口的平移目标得到平移量。
// 同一个缓动值也作为祝福文字的不透明度。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BloomState
	viewport      *game.ViewportState
	step          float64
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建镜头系统
// step: 每帧线性进度增量（0, 1]
func NewCameraSystem(em *ecs.EntityManager, state *game.BloomState, viewport *game.ViewportState, step float64) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		state:         state,
		viewport:      viewport,
		step:          step,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{})

	return cs
}

// Update 推进镜头一帧，非开花/起风阶段平移量保持为 0
func (cs *CameraSystem) Update() {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok || !cs.state.Current().Pans() {
		return
	}

	if cam.Tween == nil {
		// 补间以帧为时间单位，总时长 1/step 帧
		cam.Tween = gween.New(0, 1, float32(1/cs.step), ease.InOutCubic)
	}

	if cam.Progress < 1 {
		cam.Progress = math.Min(1, cam.Progress+cs.step)
		eased, _ := cam.Tween.Update(1)
		cam.Eased = math.Min(1, math.Max(0, float64(eased)))
	}

	// 平移目标每帧重新读取，窗口缩放后立即生效
	cam.ShiftX = cs.viewport.LateralPanTarget * cam.Eased
}

// Shift 返回当前帧的水平平移量
func (cs *CameraSystem) Shift() float64 {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0
	}
	return cam.ShiftX
}

// Eased 返回缓动后的平移进度（同时是祝福文字的不透明度）
func (cs *CameraSystem) Eased() float64 {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0
	}
	return cam.Eased
}
