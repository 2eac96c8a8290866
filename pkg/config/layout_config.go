package config

// 布局与动画常量
// 所有长度都以逻辑像素为单位（窗口点 / CSS 像素），与设备像素比无关

// Viewport Configuration (视口配置)
const (
	// GroundRatio 地面线所在高度占逻辑高度的比例
	GroundRatio = 0.88

	// CenterRatio 树根水平位置占逻辑宽度的比例
	CenterRatio = 0.5

	// DefaultMobileBreakpoint 逻辑宽度小于该值时按移动端布局
	DefaultMobileBreakpoint = 768.0

	// DefaultPanFraction 开花阶段镜头右移量占逻辑宽度的比例
	DefaultPanFraction = 0.25

	// HeartIdleOffsetY 待机时爱心位于屏幕中线上方的距离
	HeartIdleOffsetY = 100.0

	// HeartSize 爱心尺寸
	HeartSize = 20.0
)

// Falling Configuration (下落配置)
const (
	// HeartGravity 每帧竖直速度增量
	HeartGravity = 0.5
)

// Tree Configuration (分形树配置)
const (
	// TreeHeightRatio 树干长度占逻辑高度的比例
	TreeHeightRatio = 0.25

	// TrunkWidthRatio 树干宽度占逻辑高度的比例
	TrunkWidthRatio = 0.055

	// TreeMaxGeneration 最末一级树枝的代数（树干为第 0 代）
	TreeMaxGeneration = 4

	// TreeBendFactor 树枝弯曲程度（垂直于树枝方向的偏移 / 树枝长度）
	TreeBendFactor = 0.15

	// TreeBranchAngle 子树枝相对父树枝的偏转角（弧度）
	TreeBranchAngle = 0.35

	// TreeLengthDecay 子树枝长度 / 父树枝长度
	TreeLengthDecay = 0.74

	// TreeWidthDecay 子树枝宽度 / 父树枝宽度
	TreeWidthDecay = 0.7

	// TreeBranchThreshold 父树枝生长超过该比例后子树枝才开始生长
	TreeBranchThreshold = 0.7

	// TreeTipThreshold 最末一级树枝生长超过该比例后记录树梢
	TreeTipThreshold = 0.95

	// TreeTipMinDistance 两个树梢之间的最小距离，更近的视为重复
	TreeTipMinDistance = 6.0

	// GrowthRate 每帧生长进度增量（满值 100）
	GrowthRate = 0.6

	// GrowthMax 生长进度满值
	GrowthMax = 100.0
)

// Petal Configuration (花瓣配置)
const (
	// PetalArrivalStep 每帧到达进度增量
	PetalArrivalStep = 0.012

	// PetalFadeInStep 每帧淡入增量
	PetalFadeInStep = 0.02

	// PetalFadeOutStep 飘散花瓣每帧淡出量
	PetalFadeOutStep = 0.005

	// PetalMaxDelay 花瓣开始移动前的最大随机等待帧数
	PetalMaxDelay = 50.0

	// PetalWobbleFrequency 飘散时竖直摆动相对横坐标的频率
	PetalWobbleFrequency = 0.05

	// PetalWobbleAmplitude 飘散时竖直摆动幅度
	PetalWobbleAmplitude = 0.5

	// PetalBackLayerChance 新生成的花瓣落入后层的概率
	PetalBackLayerChance = 0.45

	// PetalBackLayerScale 后层花瓣尺寸缩放
	PetalBackLayerScale = 0.7

	// PetalMobileScale 移动端花瓣放大倍数
	PetalMobileScale = 1.5

	// CanopyScaleRatio 树冠心形曲线缩放基准占逻辑高度的比例
	CanopyScaleRatio = 0.025

	// CanopyHeightRatio 树冠中心高于地面的距离占逻辑高度的比例（桌面端）
	CanopyHeightRatio = 0.58

	// CanopyHeightRatioMobile 树冠中心高于地面的距离占逻辑高度的比例（移动端）
	CanopyHeightRatioMobile = 0.45
)
