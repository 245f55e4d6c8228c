package components

import "github.com/decker502/jetstrike/pkg/types"

// WeaponSlot 单个武器槽位的资源状态
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
//
// 不变量：
//   - Ammo、Charge、Heat 永不为负
//   - Overheated 为 true 时不能开火，直到 OverheatTimer 倒计时结束
type WeaponSlot struct {
	Kind         types.WeaponKind
	Damage       float64 // 单发伤害（光束为名义伤害）
	FireInterval float64 // 开火间隔（秒），光束为 0

	// 弹药（散射）
	UnlimitedAmmo bool
	Ammo          int
	MaxAmmo       int

	// 能量（光束），只能通过道具补充
	Charge     float64
	MaxCharge  float64
	ChargeRate float64 // 持续开火时每秒消耗

	// 热量（光束）
	Heat             float64
	MaxHeat          float64
	HeatRate         float64 // 开火时每秒积累
	CoolRate         float64 // 空闲时每秒散热
	Overheated       bool
	OverheatTimer    float64 // 过热剩余冷却时间（秒）
	OverheatCooldown float64 // 过热冷却总时长（秒）
}

// WeaponComponent 玩家的武器组
type WeaponComponent struct {
	Slots  [types.WeaponSlotCount]WeaponSlot
	Active types.WeaponKind // 当前激活的槽位，任一时刻恰好一个

	// Cooldown 共享开火冷却（秒），<= 0 表示可以开火
	Cooldown float64

	// BeamActive 本帧光束是否实际发射（用于碰撞检测第 2 步）
	BeamActive bool
}
