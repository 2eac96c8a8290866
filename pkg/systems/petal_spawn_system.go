package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/entities"
	"github.com/decker502/heartbloom/pkg/game"
	"github.com/decker502/heartbloom/pkg/utils"
)

// PetalSpawnSystem 在开花和起风阶段生成花瓣
//
// 停留花瓣从随机树梢出发，目标是树冠心形区域内的随机点；总数不超过上限。
// 起风阶段每帧另外生成若干飘散花瓣，起点在树冠心形区域内。
type PetalSpawnSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BloomState
	viewport      *game.ViewportState
	rng           *rand.Rand
	palette       entities.PetalPalette
	cfg           config.PetalConfig
	treeEntity    ecs.EntityID

	// settled 已生成的停留花瓣总数（停留花瓣从不删除）
	settled int
	// capLogged 达到上限的日志只打印一次
	capLogged bool
}

// NewPetalSpawnSystem 创建花瓣生成系统
func NewPetalSpawnSystem(em *ecs.EntityManager, state *game.BloomState, viewport *game.ViewportState,
	rng *rand.Rand, palette entities.PetalPalette, cfg config.PetalConfig, treeEntity ecs.EntityID) *PetalSpawnSystem {
	return &PetalSpawnSystem{
		entityManager: em,
		state:         state,
		viewport:      viewport,
		rng:           rng,
		palette:       palette,
		cfg:           cfg,
		treeEntity:    treeEntity,
	}
}

// Update 执行一帧生成
func (s *PetalSpawnSystem) Update() {
	current := s.state.Current()
	if !current.Pans() {
		return
	}

	s.spawnSettled()

	if current == game.StateWindy {
		for i := 0; i < s.cfg.FlyingPerTick; i++ {
			s.spawnFlying()
		}
	}
}

// SettledCount 返回已生成的停留花瓣数量
func (s *PetalSpawnSystem) SettledCount() int {
	return s.settled
}

func (s *PetalSpawnSystem) spawnSettled() {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, s.treeEntity)
	if !ok || len(tree.Tips) == 0 {
		return
	}

	n := s.cfg.MaxSettled - s.settled
	if n > s.cfg.PerTick {
		n = s.cfg.PerTick
	}
	if n <= 0 {
		if !s.capLogged {
			log.Printf("[PetalSpawnSystem] Settled petal cap reached (%d, %d entities alive)", s.cfg.MaxSettled, s.entityManager.EntityCount())
			s.capLogged = true
		}
		return
	}

	cx, cy := s.viewport.CanopyCenter()
	scale := s.viewport.CanopyScale()
	for i := 0; i < n; i++ {
		ox, oy := utils.SampleHeartOffset(s.rng, scale)
		tip := tree.Tips[s.rng.Intn(len(tree.Tips))]
		tx := cx + ox + (s.rng.Float64()-0.5)*scale
		ty := cy + oy + (s.rng.Float64()-0.5)*scale
		entities.NewSettledPetalEntity(s.entityManager, s.rng, s.palette, tip.X, tip.Y, tx, ty, s.viewport.IsMobile)
	}
	s.settled += n
}

func (s *PetalSpawnSystem) spawnFlying() {
	cx, cy := s.viewport.CanopyCenter()
	ox, oy := utils.SampleHeartScatter(s.rng, s.viewport.CanopyScale())
	entities.NewFlyingPetalEntity(s.entityManager, s.rng, s.palette, cx+ox, cy+oy, s.viewport.IsMobile)
}
