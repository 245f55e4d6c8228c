package entities

import (
	"math"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/types"
)

// FormationSlot 编队成员信息
type FormationSlot struct {
	Shape types.FormationShape
	Index int     // 成员序号，作为正弦相位偏移
	BaseY float64 // 正弦中心线
}

// Enemy 敌人实体
//
// 不变量：生成时 Health.Current <= Health.Max；死亡只结算一次
type Enemy struct {
	Kind     types.EnemyKind
	Behavior types.BehaviorType

	Position components.PositionComponent
	Velocity components.VelocityComponent
	Health   components.HealthComponent

	Size   float64
	Speed  float64
	Damage float64 // 接触伤害
	Points int

	SplitsOnDeath bool

	// 射击（仅五边形）
	Shoots        bool
	ShootCooldown float64
	Shots         []ecs.EntityID // 本敌人拥有的子弹句柄

	Formation FormationSlot

	// BeamNumber 正在为本敌人累积光束伤害的伤害数字句柄
	BeamNumber ecs.EntityID

	// Time 存活时间，用于正弦编队
	Time float64
}

// EnemySpawn 生成一个敌人所需的参数
type EnemySpawn struct {
	Kind       types.EnemyKind
	Behavior   types.BehaviorType
	X, Y       float64
	Difficulty float64
	Night      bool
	Formation  FormationSlot
}

// NewEnemy 按配置与出怪模式创建敌人
// 出怪模式修正（蜂群更小更快更脆、编队更耐打）和夜间加速在此一次性结算
func NewEnemy(cfg *config.EnemyStatsConfig, spawn EnemySpawn) Enemy {
	stats, ok := cfg.GetEnemyStats(spawn.Kind)
	if !ok {
		stats, _ = cfg.GetEnemyStats(types.EnemyTriangle)
	}
	mod := cfg.GetBehaviorModifiers(spawn.Behavior)

	speed := cfg.SpeedAt(spawn.Difficulty) * stats.SpeedFactor * mod.SpeedMultiplier
	if spawn.Night && cfg.NightSpeedMultiplier > 0 {
		speed *= cfg.NightSpeedMultiplier
	}
	health := stats.Health * mod.HealthMultiplier

	return Enemy{
		Kind:          spawn.Kind,
		Behavior:      spawn.Behavior,
		Position:      components.PositionComponent{X: spawn.X, Y: spawn.Y},
		Health:        components.HealthComponent{Current: health, Max: health},
		Size:          stats.Size * mod.SizeMultiplier,
		Speed:         speed,
		Damage:        stats.Damage,
		Points:        stats.Points,
		SplitsOnDeath: stats.SplitsOnDeath,
		Shoots:        stats.Shoots,
		Formation:     spawn.Formation,
	}
}

// CanSplit 判断敌人死亡时是否分裂
func CanSplit(e *Enemy, split config.SplitConfig) bool {
	return e.SplitsOnDeath && e.Size > split.MinSize
}

// NewSplitChild 创建分裂子体
// 子体为单体行为的圆形，不再分裂；血量取父体生成时血量的比例
//
// 参数:
//   - parent: 死亡的父体
//   - split: 分裂参数
//   - index, count: 子体序号与总数，子体在半径 split.Radius 的圆周上均匀分布
func NewSplitChild(parent *Enemy, split config.SplitConfig, index, count int) Enemy {
	angle := float64(index) / float64(count) * 2 * math.Pi
	health := parent.Health.Max * split.HealthFactor

	return Enemy{
		Kind:     types.EnemyCircle,
		Behavior: types.BehaviorSolo,
		Position: components.PositionComponent{
			X: parent.Position.X + math.Cos(angle)*split.Radius,
			Y: parent.Position.Y + math.Sin(angle)*split.Radius,
		},
		Health:        components.HealthComponent{Current: health, Max: health},
		Size:          parent.Size * split.SizeFactor,
		Speed:         parent.Speed * split.SpeedFactor,
		Damage:        parent.Damage,
		Points:        parent.Points,
		SplitsOnDeath: false,
	}
}
