package components

// LifetimeComponent 倒计时寿命
// 用于武器拾取物、伤害数字等限时实体，每帧递减，归零即过期
type LifetimeComponent struct {
	Duration  float64 // 总寿命(秒)
	Remaining float64 // 剩余时间(秒)
	Expired   bool
}
