package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// WeaponPickupSystem 武器拾取物：寿命、漂移、范围提示与交互拾取
type WeaponPickupSystem struct {
	world *entities.World
	cfg   config.PickupConfig
	rng   *rand.Rand
}

// NewWeaponPickupSystem 创建武器拾取系统
func NewWeaponPickupSystem(world *entities.World, cfg config.PickupConfig, rng *rand.Rand) *WeaponPickupSystem {
	return &WeaponPickupSystem{world: world, cfg: cfg, rng: rng}
}

// Update 推进拾取物
//
// 参数:
//   - dt: 本帧时长
//   - interact: 本帧是否按下交互键
//
// 返回:
//   - bool: 本帧是否拾取了武器（每帧最多一个）
func (s *WeaponPickupSystem) Update(dt float64, interact bool) bool {
	p := s.world.Player
	collected := false

	s.world.Pickups.Each(func(id ecs.EntityID, wp *entities.WeaponPickup) {
		if AdvanceLifetime(&wp.Lifetime, dt) {
			wp.InRange = false
			s.world.Pickups.DestroyEntity(id)
			return
		}

		wp.Position.X += wp.Velocity.VX * dt
		wp.Position.Y += wp.Velocity.VY * dt

		dist := math.Hypot(p.Position.X-wp.Position.X, p.Position.Y-wp.Position.Y)
		wp.InRange = p.Alive() && dist < s.cfg.Radius

		if wp.InRange && interact && !collected {
			collected = s.collect(id, wp)
		}
	})
	return collected
}

// collect 切换到拾取的武器并补满该槽位
func (s *WeaponPickupSystem) collect(id ecs.EntityID, wp *entities.WeaponPickup) bool {
	if wp.Collected {
		return false
	}
	wp.Collected = true

	p := s.world.Player
	p.Weapons.Active = wp.Kind
	ResetWeapon(p.Slot(wp.Kind))
	s.world.Pickups.DestroyEntity(id)

	log.Printf("[WeaponPickupSystem] picked up %s", wp.Kind)
	return true
}

// SpawnDrop 在指定位置掉落一把武器，从除当前武器外的种类中等概率选择
func (s *WeaponPickupSystem) SpawnDrop(x, y float64, active types.WeaponKind) ecs.EntityID {
	candidates := make([]types.WeaponKind, 0, types.WeaponSlotCount)
	for _, kind := range types.AllWeaponKinds {
		if kind != active {
			candidates = append(candidates, kind)
		}
	}
	if len(candidates) == 0 {
		return ecs.InvalidEntity
	}
	return s.Spawn(candidates[s.rng.Intn(len(candidates))], x, y)
}

// Spawn 在指定位置生成指定种类的武器拾取物
func (s *WeaponPickupSystem) Spawn(kind types.WeaponKind, x, y float64) ecs.EntityID {
	id, _ := s.world.Pickups.Create(entities.NewWeaponPickup(s.cfg, kind, x, y))
	return id
}

// PromptVisible 是否有拾取物处于交互范围内
func (s *WeaponPickupSystem) PromptVisible() bool {
	visible := false
	s.world.Pickups.Each(func(_ ecs.EntityID, wp *entities.WeaponPickup) {
		if wp.InRange {
			visible = true
		}
	})
	return visible
}
