package entities

import (
	"math"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/types"
)

// Projectile 弹丸实体（玩家子弹或敌方子弹）
type Projectile struct {
	Owner    types.ProjectileOwner
	Source   ecs.EntityID // 发射者句柄，仅敌方子弹有效
	Position components.PositionComponent
	Velocity components.VelocityComponent
	Angle    float64 // 弧度
	Damage   float64
	Drop     float64 // 下坠系数，每帧 y -= Drop * dt^2
}

// NewPlayerBullet 创建玩家子弹
//
// 参数:
//   - x, y: 发射位置
//   - angle: 飞行方向（弧度，0 为正右方）
//   - speed: 飞行速度
//   - damage: 单发伤害
//   - drop: 下坠系数
func NewPlayerBullet(x, y, angle, speed, damage, drop float64) Projectile {
	return Projectile{
		Owner:    types.OwnerPlayer,
		Position: components.PositionComponent{X: x, Y: y},
		Velocity: components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		},
		Angle:  angle,
		Damage: damage,
		Drop:   drop,
	}
}

// NewEnemyShot 创建瞄准目标点的敌方子弹
// 目标与发射点重合时无法确定方向，返回 false
func NewEnemyShot(source ecs.EntityID, x, y, targetX, targetY, speed, damage float64) (Projectile, bool) {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return Projectile{}, false
	}

	return Projectile{
		Owner:    types.OwnerEnemy,
		Source:   source,
		Position: components.PositionComponent{X: x, Y: y},
		Velocity: components.VelocityComponent{
			VX: dx / dist * speed,
			VY: dy / dist * speed,
		},
		Angle:  math.Atan2(dy, dx),
		Damage: damage,
	}, true
}
