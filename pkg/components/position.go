package components

// PositionComponent 实体在逻辑坐标系中的位置
// 逻辑坐标与 CSS 像素/窗口点一一对应，不受设备像素比影响
type PositionComponent struct {
	X float64
	Y float64
}
