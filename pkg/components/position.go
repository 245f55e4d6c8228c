package components

// PositionComponent 世界坐标（y 轴向上，视口中心为原点）
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 速度（单位/秒）
type VelocityComponent struct {
	VX, VY float64
}
