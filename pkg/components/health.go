package components

// HealthComponent 存储实体的生命值信息
// 用于玩家和敌人等可被攻击的实体
//
// 不变量：0 <= Current <= Max
// Dead 只会由伤害系统在生命值归零的那一帧置位一次
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值（生成时确定）
	Dead    bool    // 是否已死亡
}
