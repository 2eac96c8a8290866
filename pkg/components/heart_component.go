package components

// HeartComponent 下落的爱心标记
// 位置保存在同一实体的 PositionComponent 中
type HeartComponent struct {
	// Size 爱心尺寸（贝塞尔控制点的缩放基准）
	Size float64

	// VY 竖直速度（逻辑像素/帧），仅在下落阶段变化
	VY float64
}
