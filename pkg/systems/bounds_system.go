package systems

import (
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
)

// BoundsSystem 清理离开视口的实体
type BoundsSystem struct {
	world  *entities.World
	cfg    *config.CombatConfig
	damage *DamageSystem
}

// NewBoundsSystem 创建越界清理系统
func NewBoundsSystem(world *entities.World, cfg *config.CombatConfig, damage *DamageSystem) *BoundsSystem {
	return &BoundsSystem{world: world, cfg: cfg, damage: damage}
}

// Update 标记越界实体删除，返回本帧标记的数量
//
// 敌人越过左边缘一定距离后连同其子弹移除（不计分）；
// 子弹离开视口即移除；道具与武器拾取物越过左边缘后移除
func (s *BoundsSystem) Update() int {
	cam := s.world.Camera
	pruned := 0

	for _, id := range s.world.Enemies.IDs() {
		e, ok := s.world.Enemies.Get(id)
		if !ok || e.Position.X >= cam.Left-s.cfg.EnemyPruneMargin {
			continue
		}
		s.damage.RemoveEnemy(id)
		pruned++
	}

	s.world.Projectiles.Each(func(id ecs.EntityID, p *entities.Projectile) {
		if !entities.InCamera(cam, p.Position.X, p.Position.Y) {
			s.world.Projectiles.DestroyEntity(id)
			pruned++
		}
	})

	s.world.PowerUps.Each(func(id ecs.EntityID, pu *entities.PowerUp) {
		if pu.Position.X < cam.Left-s.cfg.PowerUps.PruneMargin {
			s.world.PowerUps.DestroyEntity(id)
			pruned++
		}
	})

	s.world.Pickups.Each(func(id ecs.EntityID, wp *entities.WeaponPickup) {
		if wp.Position.X < cam.Left-s.cfg.Pickups.PruneMargin {
			s.world.Pickups.DestroyEntity(id)
			pruned++
		}
	})

	return pruned
}
