package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/entities"
	"github.com/decker502/heartbloom/pkg/game"
)

// Simulation 动画的全部可变状态
//
// 不依赖任何绘图接口：渲染器每帧调用 Tick，再通过只读访问器取出几何。
// 所有方法都只能在同一个 goroutine（渲染循环）中调用。
type Simulation struct {
	cfg      *config.BloomConfig
	opts     game.ViewportOptions
	viewport game.ViewportState

	entityManager *ecs.EntityManager
	state         *game.BloomState

	heartEntity ecs.EntityID
	treeEntity  ecs.EntityID

	heartSystem  *HeartSystem
	treeSystem   *TreeSystem
	phaseSystem  *BloomPhaseSystem
	spawnSystem  *PetalSpawnSystem
	petalSystem  *PetalSystem
	cameraSystem *CameraSystem
}

// NewSimulation 创建处于待机阶段的模拟
//
// 参数:
//   - cfg: 已校验的动画配置
//   - opts: 视口布局选项
//   - width, height: 初始逻辑尺寸
//   - deviceScale: 设备像素比
//   - rng: 随机数源（测试中传入固定种子）
func NewSimulation(cfg *config.BloomConfig, opts game.ViewportOptions, width, height, deviceScale float64, rng *rand.Rand) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("simulation requires a config")
	}
	if rng == nil {
		return nil, fmt.Errorf("simulation requires a random source")
	}

	palette, err := entities.NewPetalPalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("failed to build petal palette: %w", err)
	}

	s := &Simulation{
		cfg:           cfg,
		opts:          opts,
		viewport:      game.RecomputeViewport(width, height, deviceScale, opts),
		entityManager: ecs.NewEntityManager(),
		state:         game.NewBloomState(),
	}

	hx, hy := s.viewport.HeartIdlePosition()
	s.heartEntity = entities.NewHeartEntity(s.entityManager, hx, hy, config.HeartSize)
	s.treeEntity = entities.NewTreeEntity(s.entityManager, s.viewport.CenterX, s.viewport.GroundY,
		height*config.TreeHeightRatio, height*config.TrunkWidthRatio)

	// 系统持有视口指针，Resize 整体替换视口后立即可见
	s.cameraSystem = NewCameraSystem(s.entityManager, s.state, &s.viewport, cfg.Pan.Step)
	s.heartSystem = NewHeartSystem(s.entityManager, s.state, &s.viewport, s.heartEntity)
	s.treeSystem = NewTreeSystem(s.entityManager, s.state, &s.viewport, s.treeEntity)
	s.phaseSystem = NewBloomPhaseSystem(s.state, cfg.Bloom.TicksToWind)
	s.spawnSystem = NewPetalSpawnSystem(s.entityManager, s.state, &s.viewport, rng, palette, cfg.Petals, s.treeEntity)
	s.petalSystem = NewPetalSystem(s.entityManager)

	log.Printf("[Simulation] Created %.0fx%.0f (scale %.2f, mobile=%v)",
		s.viewport.LogicalWidth, s.viewport.LogicalHeight, s.viewport.DeviceScale, s.viewport.IsMobile)
	return s, nil
}

// Start 处理点击/触摸：只在待机阶段生效
// 返回是否开始下落
func (s *Simulation) Start() bool {
	return s.state.Advance(game.StateFalling)
}

// Resize 重新计算视口；待机阶段把爱心放回中央，阶段不变
func (s *Simulation) Resize(width, height, deviceScale float64) {
	s.viewport = game.RecomputeViewport(width, height, deviceScale, s.opts)
	s.heartSystem.ResetToIdle()
	log.Printf("[Simulation] Resized to %.0fx%.0f (scale %.2f, mobile=%v)",
		width, height, s.viewport.DeviceScale, s.viewport.IsMobile)
}

// Tick 推进一帧
//
// 顺序：镜头 → 阶段相关的更新 → 清理淡出的花瓣。
// 生长/开花/起风阶段依次执行：树 → 阶段推进 → 生成花瓣 → 推进花瓣。
func (s *Simulation) Tick() {
	s.state.Tick++
	s.cameraSystem.Update()

	switch s.state.Current() {
	case game.StateIdle:
	case game.StateFalling:
		s.heartSystem.Update()
	default:
		s.treeSystem.Update()
		s.phaseSystem.Update()
		s.spawnSystem.Update()
		s.petalSystem.Update()
	}

	s.entityManager.RemoveMarkedEntities()
}

// State 返回当前阶段
func (s *Simulation) State() game.AnimationState {
	return s.state.Current()
}

// GrowthProgress 返回生长进度 0..100
func (s *Simulation) GrowthProgress() float64 {
	return s.state.GrowthProgress
}

// BloomTicks 返回开花阶段已经过的帧数
func (s *Simulation) BloomTicks() int {
	return s.state.BloomTicks
}

// Viewport 返回当前视口
func (s *Simulation) Viewport() game.ViewportState {
	return s.viewport
}

// Config 返回动画配置
func (s *Simulation) Config() *config.BloomConfig {
	return s.cfg
}

// Heart 返回爱心的位置和尺寸；visible 只在待机和下落阶段为 true
func (s *Simulation) Heart() (x, y, size float64, visible bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.heartEntity)
	if !ok {
		return 0, 0, 0, false
	}
	heart, ok := ecs.GetComponent[*components.HeartComponent](s.entityManager, s.heartEntity)
	if !ok {
		return 0, 0, 0, false
	}
	return pos.X, pos.Y, heart.Size, !s.state.Current().ShowsTree()
}

// TreeSegments 返回当前帧的树枝（调用方不得修改）
func (s *Simulation) TreeSegments() []components.TreeSegment {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, s.treeEntity)
	if !ok {
		return nil
	}
	return tree.Segments
}

// EachPetal 按创建顺序遍历某一层的花瓣（上一次 Tick 结束时的快照）
// fn 收到的组件只读
func (s *Simulation) EachPetal(layer components.PetalLayer, fn func(p *components.PetalComponent, pos *components.PositionComponent)) {
	s.petalSystem.Each(layer, fn)
}

// SettledCount 返回停留花瓣的数量
func (s *Simulation) SettledCount() int {
	return s.spawnSystem.SettledCount()
}

// CameraShift 返回当前帧的水平平移量
func (s *Simulation) CameraShift() float64 {
	return s.cameraSystem.Shift()
}

// MessageOpacity 返回祝福文字的不透明度 0..1
func (s *Simulation) MessageOpacity() float64 {
	return s.cameraSystem.Eased()
}

// ShowsGround 当前阶段是否绘制地面线
func (s *Simulation) ShowsGround() bool {
	return s.state.Current().ShowsTree()
}
