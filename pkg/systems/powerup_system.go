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

// PowerUpSystem 道具的漂移、生成与效果结算
type PowerUpSystem struct {
	world *entities.World
	cfg   *config.GameConfig
	rng   *rand.Rand

	kinds   []types.PowerUpKind
	weights []float64
}

// NewPowerUpSystem 创建道具系统
// 掉落权重表按配置顺序展开，未知种类在配置校验阶段已被拒绝
func NewPowerUpSystem(world *entities.World, cfg *config.GameConfig, rng *rand.Rand) *PowerUpSystem {
	s := &PowerUpSystem{world: world, cfg: cfg, rng: rng}
	for _, w := range cfg.Combat.Drops.PowerUpWeights {
		kind, ok := types.PowerUpKindFromString(w.Kind)
		if !ok {
			continue
		}
		s.kinds = append(s.kinds, kind)
		s.weights = append(s.weights, w.Weight)
	}
	return s
}

// Update 道具向左漂移并上下浮动
func (s *PowerUpSystem) Update(dt float64) {
	pc := s.cfg.Combat.PowerUps
	s.world.PowerUps.Each(func(_ ecs.EntityID, pu *entities.PowerUp) {
		pu.Time += dt
		pu.Position.X += pu.Velocity.VX * dt
		pu.Position.Y += math.Sin(pu.Time*pc.BobFrequency) * pc.BobAmplitude * dt
	})
}

// SpawnDrop 按掉落权重在指定位置生成一个道具
func (s *PowerUpSystem) SpawnDrop(x, y float64) ecs.EntityID {
	kind := types.PowerUpHealth
	if i, ok := weightedIndex(s.rng, s.weights); ok {
		kind = s.kinds[i]
	}
	return s.Spawn(kind, x, y)
}

// Spawn 在指定位置生成指定种类的道具
func (s *PowerUpSystem) Spawn(kind types.PowerUpKind, x, y float64) ecs.EntityID {
	id, _ := s.world.PowerUps.Create(entities.NewPowerUp(s.cfg.Combat.PowerUps, kind, x, y))
	return id
}

// Collect 拾取道具并立即生效
//
// 返回:
//   - bool: 道具存在且本次成功拾取
func (s *PowerUpSystem) Collect(id ecs.EntityID) bool {
	pu, ok := s.world.PowerUps.Get(id)
	if !ok || pu.Collected {
		return false
	}
	pu.Collected = true
	s.Apply(pu.Kind)
	s.world.PowerUps.DestroyEntity(id)
	return true
}

// Apply 对玩家应用道具效果
func (s *PowerUpSystem) Apply(kind types.PowerUpKind) {
	p := s.world.Player
	pc := s.cfg.Combat.PowerUps

	switch kind {
	case types.PowerUpHealth:
		p.Health.Current = math.Min(p.Health.Max, p.Health.Current+pc.HealthAmount)
	case types.PowerUpFuel:
		p.Jetpack.Fuel = p.Jetpack.MaxFuel
	case types.PowerUpSpreadAmmo:
		RefillWeapon(p.Slot(types.WeaponSpread), float64(pc.AmmoAmount))
	case types.PowerUpBeamCharge:
		RefillWeapon(p.Slot(types.WeaponBeam), pc.ChargeAmount)
	case types.PowerUpMobility:
		entities.ApplyJetpackLevel(&p.Jetpack, s.cfg.Player, p.Jetpack.Level+1)
		log.Printf("[PowerUpSystem] jetpack level %d", p.Jetpack.Level)
	}
}
