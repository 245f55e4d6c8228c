package systems

import (
	"math"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/types"
)

// 武器资源模型
//
// 所有函数直接修改传入的槽位，保证：
//   - 弹药、能量、热量永不为负
//   - 补充后不超过上限
//   - 过热期间不能开火，冷却倒计时按时间推进，与输入无关

// HasResource 判断武器是否还有可用资源
func HasResource(slot *components.WeaponSlot) bool {
	switch slot.Kind {
	case types.WeaponSpread:
		return slot.UnlimitedAmmo || slot.Ammo >= 1
	case types.WeaponBeam:
		return slot.Charge > 0
	default:
		return true
	}
}

// ConsumeAmmo 消耗 1 发弹药
// 弹药不足时返回 false 且不修改槽位
func ConsumeAmmo(slot *components.WeaponSlot) bool {
	if slot.UnlimitedAmmo {
		return true
	}
	if slot.Ammo < 1 {
		return false
	}
	slot.Ammo--
	return true
}

// DrainCharge 按 ChargeRate * dt 消耗能量，返回实际消耗量
// 能量不足时只消耗剩余部分，不会变为负数
func DrainCharge(slot *components.WeaponSlot, dt float64) float64 {
	want := slot.ChargeRate * dt
	if want <= 0 || slot.Charge <= 0 {
		return 0
	}
	drained := math.Min(want, slot.Charge)
	slot.Charge -= drained
	if slot.Charge < 0 {
		slot.Charge = 0
	}
	return drained
}

// timeEpsilon 逐帧累加的时间与固定阈值比较时的容差
// 60 帧每帧 1/60 秒的累加结果会略小于 1.0
const timeEpsilon = 1e-9

// AccrueHeat 开火时积累热量
// 热量达到上限的那一帧进入过热并启动冷却倒计时，返回 true
func AccrueHeat(slot *components.WeaponSlot, dt float64) bool {
	if slot.Overheated || slot.MaxHeat <= 0 {
		return false
	}
	slot.Heat += slot.HeatRate * dt
	if slot.Heat >= slot.MaxHeat-timeEpsilon {
		slot.Heat = slot.MaxHeat
		slot.Overheated = true
		slot.OverheatTimer = slot.OverheatCooldown
		return true
	}
	return false
}

// CoolWeapon 推进过热冷却并在空闲时散热
// 过热倒计时结束时清除过热标志并将热量归零，返回 true
func CoolWeapon(slot *components.WeaponSlot, dt float64, firing bool) bool {
	if slot.Overheated {
		slot.OverheatTimer -= dt
		if slot.OverheatTimer <= timeEpsilon {
			slot.Overheated = false
			slot.OverheatTimer = 0
			slot.Heat = 0
			return true
		}
		return false
	}

	if !firing && slot.Heat > 0 {
		slot.Heat = math.Max(0, slot.Heat-slot.CoolRate*dt)
	}
	return false
}

// RefillWeapon 补充弹药或能量，结果限制在上限内
func RefillWeapon(slot *components.WeaponSlot, amount float64) {
	if amount <= 0 {
		return
	}
	switch slot.Kind {
	case types.WeaponSpread:
		if slot.UnlimitedAmmo {
			return
		}
		slot.Ammo += int(amount)
		if slot.Ammo > slot.MaxAmmo {
			slot.Ammo = slot.MaxAmmo
		}
	case types.WeaponBeam:
		slot.Charge = math.Min(slot.MaxCharge, slot.Charge+amount)
	}
}

// ResetWeapon 恢复满资源并清除热量（拾取同类武器时使用）
func ResetWeapon(slot *components.WeaponSlot) {
	slot.Ammo = slot.MaxAmmo
	slot.Charge = slot.MaxCharge
	slot.Heat = 0
	slot.Overheated = false
	slot.OverheatTimer = 0
}
