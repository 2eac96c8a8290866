package components

// TreeSegment 一段二次贝塞尔树枝，供渲染器直接绘制
type TreeSegment struct {
	X0, Y0 float64 // 起点
	CX, CY float64 // 控制点
	X1, Y1 float64 // 终点
	Width  float64
	// Generation 0 为树干，4 为最末一级树枝
	Generation int
}

// BranchTip 最末一级树枝的端点，花瓣从这里生成
type BranchTip struct {
	X, Y float64
}

// TreeComponent 分形树的几何状态
//
// Segments 每帧按生长进度重新生成；Tips 只追加不删除。
type TreeComponent struct {
	RootX, RootY float64
	Length       float64 // 树干长度
	Width        float64 // 树干宽度
	Segments     []TreeSegment
	Tips         []BranchTip
}
