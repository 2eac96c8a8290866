package utils

import "github.com/tanema/gween/ease"

// Easing Functions (缓动函数)
//
// 曲线本身来自 gween/ease，与镜头平移的补间使用同一套实现；
// 这里只负责 float64 ↔ float32 的转换和进度裁剪。

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（花瓣从树梢飞向树冠）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return float64(ease.OutCubic(float32(Clamp01(t)), 0, 1, 1))
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 v 限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
