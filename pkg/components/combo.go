package components

// ComboComponent 连击状态
//
// 不变量：SinceLastHit >= Timeout 或玩家受伤时 Count 归零
type ComboComponent struct {
	Count        int     // 连击数
	SinceLastHit float64 // 距上次有效命中的时间（秒）
	Timeout      float64 // 连击超时（秒）
	BestCount    int     // 本局最高连击
}
