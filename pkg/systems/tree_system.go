package systems

import (
	"math"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/game"
	"github.com/decker502/heartbloom/pkg/utils"
)

// GrowTree 递归生成分形树的几何
//
// 单个生长进度驱动整棵树：父树枝长到 70% 之后，两根子树枝才按重新缩放的进度开始生长。
// 最末一代树枝长到 95% 以上时记录端点为树梢，6 个单位内已有树梢则跳过。
//
// 参数:
//   - segments: 追加生成的树枝（可传入复用的切片）
//   - tips: 已记录的树梢，只追加不删除
//   - x, y: 本段起点
//   - length: 本段完整长度
//   - angle: 生长方向（弧度，-π/2 为竖直向上）
//   - width: 线宽
//   - gen: 代数，树干为 0
//   - growth: 本段生长进度，<= 0 时不生成任何东西
//
// 返回追加后的 segments 和 tips。
func GrowTree(segments []components.TreeSegment, tips []components.BranchTip,
	x, y, length, angle, width float64, gen int, growth float64) ([]components.TreeSegment, []components.BranchTip) {

	if growth <= 0 || gen > config.TreeMaxGeneration {
		return segments, tips
	}

	current := length * growth
	ex := x + math.Cos(angle)*current
	ey := y + math.Sin(angle)*current

	// 控制点位于弦中点，沿垂直方向偏移，让树枝略微弯曲
	bend := length * config.TreeBendFactor
	segments = append(segments, components.TreeSegment{
		X0:         x,
		Y0:         y,
		CX:         (x+ex)/2 + math.Cos(angle+math.Pi/2)*bend,
		CY:         (y+ey)/2 + math.Sin(angle+math.Pi/2)*bend,
		X1:         ex,
		Y1:         ey,
		Width:      width,
		Generation: gen,
	})

	if gen == config.TreeMaxGeneration && growth >= config.TreeTipThreshold && !hasTipNear(tips, ex, ey) {
		tips = append(tips, components.BranchTip{X: ex, Y: ey})
	}

	if growth > config.TreeBranchThreshold && gen < config.TreeMaxGeneration {
		child := math.Min(1, (growth-config.TreeBranchThreshold)/(1-config.TreeBranchThreshold))
		childLen := length * config.TreeLengthDecay
		childWidth := width * config.TreeWidthDecay
		segments, tips = GrowTree(segments, tips, ex, ey, childLen, angle-config.TreeBranchAngle, childWidth, gen+1, child)
		segments, tips = GrowTree(segments, tips, ex, ey, childLen, angle+config.TreeBranchAngle, childWidth, gen+1, child)
	}

	return segments, tips
}

func hasTipNear(tips []components.BranchTip, x, y float64) bool {
	for _, t := range tips {
		if math.Hypot(t.X-x, t.Y-y) < config.TreeTipMinDistance {
			return true
		}
	}
	return false
}

// TreeSystem 每帧按生长进度重建树的几何
//
// 树根和尺寸每帧从视口读取，窗口缩放后树会跟着移动和缩放。
type TreeSystem struct {
	entityManager *ecs.EntityManager
	state         *game.BloomState
	viewport      *game.ViewportState
	treeEntity    ecs.EntityID
}

// NewTreeSystem 创建分形树系统
func NewTreeSystem(em *ecs.EntityManager, state *game.BloomState, viewport *game.ViewportState, treeEntity ecs.EntityID) *TreeSystem {
	return &TreeSystem{
		entityManager: em,
		state:         state,
		viewport:      viewport,
		treeEntity:    treeEntity,
	}
}

// Update 重新生成树枝，并记录新出现的树梢
func (s *TreeSystem) Update() {
	if !s.state.Current().ShowsTree() {
		return
	}

	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, s.treeEntity)
	if !ok {
		return
	}

	tree.RootX = s.viewport.CenterX
	tree.RootY = s.viewport.GroundY
	tree.Length = s.viewport.LogicalHeight * config.TreeHeightRatio
	tree.Width = s.viewport.LogicalHeight * config.TrunkWidthRatio

	growth := utils.Clamp01(s.state.GrowthProgress / config.GrowthMax)
	tree.Segments, tree.Tips = GrowTree(tree.Segments[:0], tree.Tips,
		tree.RootX, tree.RootY, tree.Length, -math.Pi/2, tree.Width, 0, growth)
}
