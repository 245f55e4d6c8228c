package components

// DifficultyComponent 存储难度数据
// 难度是单调递增的标量，按固定周期增加，
// 影响敌人速度、出怪间隔和波次规模
type DifficultyComponent struct {
	Level    float64 // 当前难度（初始 1）
	Timer    float64 // 距上次提升的累计时间（秒）
	Step     float64 // 每次提升量
	Interval float64 // 提升周期（秒）
	Elapsed  float64 // 本局累计时间（秒）
}
