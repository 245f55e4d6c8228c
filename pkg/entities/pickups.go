package entities

import (
	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/types"
)

// PowerUp 接触即拾取的道具
type PowerUp struct {
	Kind      types.PowerUpKind
	Position  components.PositionComponent
	Velocity  components.VelocityComponent
	Time      float64
	Collected bool
}

// NewPowerUp 在指定位置创建道具，向左漂移
func NewPowerUp(cfg config.PowerUpConfig, kind types.PowerUpKind, x, y float64) PowerUp {
	return PowerUp{
		Kind:     kind,
		Position: components.PositionComponent{X: x, Y: y},
		Velocity: components.VelocityComponent{VX: -cfg.Speed},
	}
}

// WeaponPickup 需要按交互键拾取的武器
type WeaponPickup struct {
	Kind      types.WeaponKind
	Position  components.PositionComponent
	Velocity  components.VelocityComponent
	Lifetime  components.LifetimeComponent
	Collected bool

	// InRange 玩家是否在交互范围内（供界面显示提示）
	InRange bool
}

// NewWeaponPickup 在指定位置创建武器拾取物
func NewWeaponPickup(cfg config.PickupConfig, kind types.WeaponKind, x, y float64) WeaponPickup {
	return WeaponPickup{
		Kind:     kind,
		Position: components.PositionComponent{X: x, Y: y},
		Velocity: components.VelocityComponent{VX: -cfg.Speed},
		Lifetime: components.LifetimeComponent{Duration: cfg.Lifetime, Remaining: cfg.Lifetime},
	}
}

// DamageNumber 伤害数字（瞬时得分反馈）
//
// 光束伤害数字通过 Target 句柄绑定到正在累积伤害的敌人，
// 每次累加时重置寿命并重新锚定到敌人上方
type DamageNumber struct {
	Beam     bool
	Target   ecs.EntityID
	Amount   float64
	Position components.PositionComponent
	Lifetime components.LifetimeComponent
}

// NewBulletDamageNumber 创建子弹命中的伤害数字，向上漂浮
func NewBulletDamageNumber(cfg config.DamageNumberConfig, amount, x, y float64) DamageNumber {
	return DamageNumber{
		Amount:   amount,
		Position: components.PositionComponent{X: x, Y: y},
		Lifetime: components.LifetimeComponent{Duration: cfg.BulletLifetime, Remaining: cfg.BulletLifetime},
	}
}

// NewBeamDamageNumber 创建绑定到敌人的光束伤害累积数字
func NewBeamDamageNumber(cfg config.DamageNumberConfig, target ecs.EntityID, amount, x, y float64) DamageNumber {
	return DamageNumber{
		Beam:     true,
		Target:   target,
		Amount:   amount,
		Position: components.PositionComponent{X: x, Y: y + cfg.AnchorOffset},
		Lifetime: components.LifetimeComponent{Duration: cfg.BeamLifetime, Remaining: cfg.BeamLifetime},
	}
}
