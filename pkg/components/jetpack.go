package components

// JetpackComponent 喷气背包燃料与等级
type JetpackComponent struct {
	Level       int
	Fuel        float64
	MaxFuel     float64
	Consumption float64 // 向上推进时每秒消耗
	Regen       float64 // 空闲时每秒恢复
	SpeedBonus  float64 // 速度加成，速度 = 基础速度 * (1 + SpeedBonus)
	Shake       float64 // 屏幕震动强度，仅供表现层使用
	Unlimited   bool    // 满级无限燃料
}
