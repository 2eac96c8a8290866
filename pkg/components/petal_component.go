package components

import "image/color"

// PetalLayer 花瓣所在的绘制层
type PetalLayer int

const (
	// PetalLayerFlying 被风吹散的花瓣，最先绘制
	PetalLayerFlying PetalLayer = iota
	// PetalLayerBack 后层花瓣（颜色更浅、尺寸更小），营造纵深
	PetalLayerBack
	// PetalLayerFront 前层花瓣
	PetalLayerFront
)

// PetalComponent 单片花瓣/叶子的运行时状态
//
// 纯数据组件，更新逻辑在 systems.AdvancePetal 中。
// 当前位置保存在同一实体的 PositionComponent 中。
type PetalComponent struct {
	// 起点（树梢或飘散起点）和目标点（树冠中的位置）
	StartX, StartY   float64
	TargetX, TargetY float64

	Size  float64
	Color color.RGBA

	// Alpha 透明度，始终在 [0, 1] 内
	Alpha float64

	// Progress 到达进度 0..1，超过 1 时被截断
	Progress float64

	// Delay 开始移动前剩余的等待帧数
	Delay float64

	// Detached 为 true 时花瓣按飘散规则运动并逐渐消失
	Detached bool

	// 飘散运动参数
	VX, VY float64
	Angle  float64 // 当前旋转角（弧度），仅飘散花瓣绘制时使用
	Spin   float64 // 每帧旋转增量（弧度）

	Layer PetalLayer
}
