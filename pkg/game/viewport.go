package game

import (
	"math"

	"github.com/decker502/heartbloom/pkg/config"
)

// ViewportState 由窗口尺寸派生的逻辑坐标
//
// 整体重新计算，从不部分修改。
type ViewportState struct {
	LogicalWidth  float64
	LogicalHeight float64

	// GroundY 地面线（树根）的纵坐标
	GroundY float64

	// CenterX 树根的横坐标
	CenterX float64

	// LateralPanTarget 开花阶段镜头平移的最终距离
	LateralPanTarget float64

	// IsMobile 窄屏（或强制移动端）布局
	IsMobile bool

	// DeviceScale 设备像素比（逻辑像素 → 物理像素）
	DeviceScale float64
}

// ViewportOptions 视口计算所需的配置
type ViewportOptions struct {
	MobileBreakpoint float64
	PanFraction      float64
	PanOnMobile      bool
	// ForceMobile 无视宽度强制使用移动端布局
	ForceMobile bool
}

// ViewportOptionsFromConfig 从动画配置中提取视口选项
func ViewportOptionsFromConfig(cfg *config.BloomConfig, forceMobile bool) ViewportOptions {
	return ViewportOptions{
		MobileBreakpoint: cfg.MobileBreakpoint,
		PanFraction:      cfg.Pan.Fraction,
		PanOnMobile:      cfg.Pan.OnMobile,
		ForceMobile:      forceMobile,
	}
}

// RecomputeViewport 根据窗口逻辑尺寸重新计算视口
//
// 参数：
//   - width, height: 逻辑尺寸（窗口点）
//   - deviceScale: 设备像素比，<= 0 时按 1 处理
//   - opts: 布局选项
func RecomputeViewport(width, height, deviceScale float64, opts ViewportOptions) ViewportState {
	if deviceScale <= 0 || math.IsNaN(deviceScale) {
		deviceScale = 1
	}

	isMobile := opts.ForceMobile || width < opts.MobileBreakpoint

	panTarget := width * opts.PanFraction
	if isMobile && !opts.PanOnMobile {
		panTarget = 0
	}

	return ViewportState{
		LogicalWidth:     width,
		LogicalHeight:    height,
		GroundY:          height * config.GroundRatio,
		CenterX:          width * config.CenterRatio,
		LateralPanTarget: panTarget,
		IsMobile:         isMobile,
		DeviceScale:      deviceScale,
	}
}

// SurfaceSize 返回绘图表面的物理像素尺寸
func (v ViewportState) SurfaceSize() (int, int) {
	return int(math.Ceil(v.LogicalWidth * v.DeviceScale)), int(math.Ceil(v.LogicalHeight * v.DeviceScale))
}

// HeartIdlePosition 待机时爱心的位置
func (v ViewportState) HeartIdlePosition() (float64, float64) {
	return v.CenterX, v.LogicalHeight/2 - config.HeartIdleOffsetY
}

// CanopyCenter 树冠（心形花瓣云）的中心
func (v ViewportState) CanopyCenter() (float64, float64) {
	ratio := config.CanopyHeightRatio
	if v.IsMobile {
		ratio = config.CanopyHeightRatioMobile
	}
	return v.CenterX, v.GroundY - v.LogicalHeight*ratio
}

// CanopyScale 心形曲线的缩放基准
func (v ViewportState) CanopyScale() float64 {
	return v.LogicalHeight * config.CanopyScaleRatio
}
