package entities

import (
	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/types"
)

// Player 玩家实体
//
// 不变量：Health.Current ∈ [0, Health.Max]；任一时刻恰好一个武器槽位处于激活状态
type Player struct {
	Position components.PositionComponent
	Velocity components.VelocityComponent
	Health   components.HealthComponent
	Weapons  components.WeaponComponent
	Jetpack  components.JetpackComponent
	Shield   components.ShieldComponent

	// DeathTimer 死亡后到游戏结束的剩余时间（秒）
	DeathTimer float64
}

// Alive 玩家是否存活
func (p *Player) Alive() bool {
	return !p.Health.Dead
}

// ActiveSlot 返回当前激活的武器槽位
func (p *Player) ActiveSlot() *components.WeaponSlot {
	return &p.Weapons.Slots[p.Weapons.Active]
}

// Slot 返回指定种类的武器槽位
func (p *Player) Slot(kind types.WeaponKind) *components.WeaponSlot {
	return &p.Weapons.Slots[kind]
}

// NewPlayer 按配置创建处于初始状态的玩家
//
// 参数:
//   - cfg: 游戏配置
//
// 返回:
//   - *Player: 满血、主武器激活、喷气背包 0 级的玩家
func NewPlayer(cfg *config.GameConfig) *Player {
	p := &Player{
		Position: components.PositionComponent{X: cfg.Player.StartX, Y: cfg.Player.StartY},
		Health: components.HealthComponent{
			Current: cfg.Player.MaxHealth,
			Max:     cfg.Player.MaxHealth,
		},
		Weapons: components.WeaponComponent{Active: types.WeaponPrimary},
	}

	for _, kind := range types.AllWeaponKinds {
		p.Weapons.Slots[kind] = NewWeaponSlot(kind, cfg.Weapons.GetWeaponStats(kind))
	}

	ApplyJetpackLevel(&p.Jetpack, cfg.Player, 0)
	return p
}

// NewWeaponSlot 按配置创建满资源的武器槽位
func NewWeaponSlot(kind types.WeaponKind, stats config.WeaponStats) components.WeaponSlot {
	return components.WeaponSlot{
		Kind:             kind,
		Damage:           stats.Damage,
		FireInterval:     stats.FireInterval,
		UnlimitedAmmo:    stats.UnlimitedAmmo,
		Ammo:             stats.MaxAmmo,
		MaxAmmo:          stats.MaxAmmo,
		Charge:           stats.MaxCharge,
		MaxCharge:        stats.MaxCharge,
		ChargeRate:       stats.ChargeRate,
		MaxHeat:          stats.MaxHeat,
		HeatRate:         stats.HeatRate,
		CoolRate:         stats.CoolRate,
		OverheatCooldown: stats.OverheatCooldown,
	}
}

// ApplyJetpackLevel 将喷气背包设置为指定等级并加满燃料
// 等级超出配置范围时取最高等级
func ApplyJetpackLevel(jp *components.JetpackComponent, cfg *config.PlayerConfig, level int) {
	if level > cfg.MaxJetpackLevel() {
		level = cfg.MaxJetpackLevel()
	}
	if level < 0 {
		level = 0
	}
	params := cfg.JetpackLevelAt(level)
	jp.Level = level
	jp.MaxFuel = params.MaxFuel
	jp.Fuel = params.MaxFuel
	jp.Consumption = params.Consumption
	jp.Regen = params.Regen
	jp.SpeedBonus = params.SpeedBonus
	jp.Shake = params.Shake
	jp.Unlimited = params.Unlimited
}
