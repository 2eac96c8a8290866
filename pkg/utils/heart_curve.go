package utils

import (
	"math"
	"math/rand"
)

// HeartCurve 心形参数曲线上角度 theta 对应的点
//
//	x = 16 sin³θ
//	y = -(13 cosθ - 5 cos2θ - 2 cos3θ - cos4θ)
//
// y 取负号使心尖朝下（屏幕坐标 y 轴向下）。曲线范围约 x∈[-16,16]，y∈[-12,17]。
func HeartCurve(theta float64) (x, y float64) {
	s := math.Sin(theta)
	x = 16 * s * s * s
	y = -(13*math.Cos(theta) - 5*math.Cos(2*theta) - 2*math.Cos(3*theta) - math.Cos(4*theta))
	return x, y
}

// SampleHeartOffset 在心形区域内随机取一个相对中心的偏移
//
// 半径因子取 sqrt(rand)，使点在面积上近似均匀分布而不是挤在中心。
func SampleHeartOffset(rng *rand.Rand, scale float64) (x, y float64) {
	hx, hy := HeartCurve(rng.Float64() * 2 * math.Pi)
	f := math.Sqrt(rng.Float64())
	return hx * scale * f, hy * scale * f
}

// SampleHeartScatter 飘散花瓣的起点：两个轴各自取独立的半径因子，
// 分布比 SampleHeartOffset 更松散
func SampleHeartScatter(rng *rand.Rand, scale float64) (x, y float64) {
	hx, hy := HeartCurve(rng.Float64() * 2 * math.Pi)
	return hx * scale * math.Sqrt(rng.Float64()), hy * scale * math.Sqrt(rng.Float64())
}
