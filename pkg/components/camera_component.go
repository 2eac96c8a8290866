package components

import "github.com/tanema/gween"

// CameraComponent 管理开花阶段的横向平移镜头
// 平移量 = 目标偏移 × 缓动后的进度，同时驱动祝福文字的不透明度
type CameraComponent struct {
	// Progress 线性平移进度 0..1
	Progress float64

	// Eased 三次缓入缓出后的进度 0..1
	Eased float64

	// ShiftX 当前帧的水平平移量（逻辑像素）
	ShiftX float64

	// Tween 平移补间，首次进入开花阶段时创建
	Tween *gween.Tween
}
