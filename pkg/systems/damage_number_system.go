package systems

import (
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
)

// DamageNumberSystem 管理伤害数字的生成、漂浮与过期
type DamageNumberSystem struct {
	world *entities.World
	cfg   config.DamageNumberConfig
}

// NewDamageNumberSystem 创建伤害数字系统
func NewDamageNumberSystem(world *entities.World, cfg config.DamageNumberConfig) *DamageNumberSystem {
	return &DamageNumberSystem{world: world, cfg: cfg}
}

// Update 子弹伤害数字上浮；光束伤害数字跟随目标；过期的标记删除
func (s *DamageNumberSystem) Update(dt float64) {
	s.world.DamageNumbers.Each(func(id ecs.EntityID, n *entities.DamageNumber) {
		if n.Beam {
			if e, ok := s.world.Enemies.Get(n.Target); ok {
				n.Position.X = e.Position.X
				n.Position.Y = e.Position.Y + s.cfg.AnchorOffset
			}
		} else {
			n.Position.Y += s.cfg.RiseSpeed * dt
		}

		if AdvanceLifetime(&n.Lifetime, dt) {
			s.world.DamageNumbers.DestroyEntity(id)
		}
	})
}

// SpawnBullet 在命中点生成子弹伤害数字
func (s *DamageNumberSystem) SpawnBullet(amount, x, y float64) ecs.EntityID {
	id, _ := s.world.DamageNumbers.Create(entities.NewBulletDamageNumber(s.cfg, amount, x, y))
	return id
}

// AccumulateBeam 把一次光束伤害累加到敌人的光束伤害数字上
// 通过敌人持有的句柄查找，句柄失效时新建一个
//
// 参数:
//   - enemyID: 敌人句柄
//   - e: 敌人（调用方保证在本次调用期间有效）
//   - amount: 本帧光束伤害
func (s *DamageNumberSystem) AccumulateBeam(enemyID ecs.EntityID, e *entities.Enemy, amount float64) ecs.EntityID {
	if n, ok := s.world.DamageNumbers.Get(e.BeamNumber); ok && n.Beam && n.Target == enemyID {
		n.Amount += amount
		ResetLifetime(&n.Lifetime)
		n.Position.X = e.Position.X
		n.Position.Y = e.Position.Y + s.cfg.AnchorOffset
		return e.BeamNumber
	}

	id, _ := s.world.DamageNumbers.Create(
		entities.NewBeamDamageNumber(s.cfg, enemyID, amount, e.Position.X, e.Position.Y),
	)
	e.BeamNumber = id
	return id
}
