package components

// CameraComponent 视口在世界坐标中的可见矩形
// 世界坐标 y 轴向上，Top > Bottom
// 模拟只读取该矩形，由宿主在窗口尺寸变化时更新
type CameraComponent struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}
