package entities

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/heartbloom/pkg/components"
	"github.com/decker502/heartbloom/pkg/config"
	"github.com/decker502/heartbloom/pkg/ecs"
	"github.com/decker502/heartbloom/pkg/utils"
)

// PetalPalette 花瓣颜色（已解析）
type PetalPalette struct {
	// Leaves 前层和飘散花瓣随机取色的候选颜色
	Leaves []color.RGBA
	// BackLeaf 后层花瓣统一使用的浅色
	BackLeaf color.RGBA
}

// NewPetalPalette 从配置中解析花瓣颜色
func NewPetalPalette(cfg config.PaletteConfig) (PetalPalette, error) {
	if len(cfg.Leaves) == 0 {
		return PetalPalette{}, fmt.Errorf("petal palette requires at least one leaf color")
	}

	leaves := make([]color.RGBA, 0, len(cfg.Leaves))
	for _, hex := range cfg.Leaves {
		c, err := utils.ParseHexColor(hex)
		if err != nil {
			return PetalPalette{}, fmt.Errorf("leaf color: %w", err)
		}
		leaves = append(leaves, c)
	}

	back, err := utils.ParseHexColor(cfg.BackLeaf)
	if err != nil {
		return PetalPalette{}, fmt.Errorf("back leaf color: %w", err)
	}

	return PetalPalette{Leaves: leaves, BackLeaf: back}, nil
}

// newPetal 生成带随机尺寸、颜色、延迟和飘散参数的花瓣
//
// 随机数的取用顺序固定，同一个种子总是生成同样的花瓣。
func newPetal(rng *rand.Rand, palette PetalPalette, startX, startY, targetX, targetY float64, mobile bool) *components.PetalComponent {
	size := rng.Float64()*2 + 2.5
	if mobile {
		size *= config.PetalMobileScale
	}

	return &components.PetalComponent{
		StartX:  startX,
		StartY:  startY,
		TargetX: targetX,
		TargetY: targetY,
		Size:    size,
		Color:   palette.Leaves[rng.Intn(len(palette.Leaves))],
		Alpha:   0,
		Delay:   rng.Float64() * config.PetalMaxDelay,
		VX:      -2 - rng.Float64()*3,
		VY:      (rng.Float64() - 0.5) * 2,
		Angle:   rng.Float64() * 2 * math.Pi,
		Spin:    (rng.Float64() - 0.5) * 0.1,
		Layer:   components.PetalLayerFront,
	}
}

// NewSettledPetalEntity 创建从树梢飞向树冠的花瓣实体
//
// 约 45% 的花瓣进入后层：改用浅色并缩小，制造纵深感。
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源
//   - palette: 花瓣颜色
//   - startX, startY: 起点（树梢）
//   - targetX, targetY: 树冠中的目标点
//   - mobile: 移动端布局时花瓣放大
//
// 返回:
//   - ecs.EntityID: 新花瓣实体
//   - components.PetalLayer: 花瓣所在的层
func NewSettledPetalEntity(em *ecs.EntityManager, rng *rand.Rand, palette PetalPalette,
	startX, startY, targetX, targetY float64, mobile bool) (ecs.EntityID, components.PetalLayer) {

	petal := newPetal(rng, palette, startX, startY, targetX, targetY, mobile)
	if rng.Float64() < config.PetalBackLayerChance {
		petal.Color = palette.BackLeaf
		petal.Size *= config.PetalBackLayerScale
		petal.Layer = components.PetalLayerBack
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: startX, Y: startY})
	ecs.AddComponent(em, id, petal)
	return id, petal.Layer
}

// NewFlyingPetalEntity 创建被风吹散的花瓣实体
// 起点即目标点，生成时完全不透明且没有等待延迟
func NewFlyingPetalEntity(em *ecs.EntityManager, rng *rand.Rand, palette PetalPalette, x, y float64, mobile bool) ecs.EntityID {
	petal := newPetal(rng, palette, x, y, x, y, mobile)
	petal.Detached = true
	petal.Alpha = 1
	petal.Delay = 0
	petal.Layer = components.PetalLayerFlying

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, petal)
	return id
}
