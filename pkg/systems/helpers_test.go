package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/game"
	"github.com/decker502/jetstrike/pkg/types"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// testRig 组装一组共享世界的系统，掉落概率默认关闭以保证结果确定
type testRig struct {
	cfg       *config.GameConfig
	world     *entities.World
	state     *game.GameState
	rng       *rand.Rand
	weapons   *WeaponSystem
	player    *PlayerSystem
	enemies   *EnemySystem
	powerUps  *PowerUpSystem
	pickups   *WeaponPickupSystem
	numbers   *DamageNumberSystem
	combo     *ComboSystem
	damage    *DamageSystem
	collision *CollisionSystem
	bounds    *BoundsSystem
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	cfg := config.DefaultGameConfig()
	cfg.Combat.Drops.PowerUpChance = 0
	cfg.Combat.Drops.WeaponChance = 0

	r := &testRig{
		cfg:   cfg,
		world: entities.NewWorld(cfg),
		state: game.NewGameState(),
		rng:   rand.New(rand.NewSource(1)),
	}
	r.weapons = NewWeaponSystem(r.world, cfg)
	r.player = NewPlayerSystem(r.world, cfg, r.weapons)
	r.enemies = NewEnemySystem(r.world, cfg.Enemies, r.rng)
	r.powerUps = NewPowerUpSystem(r.world, cfg, r.rng)
	r.pickups = NewWeaponPickupSystem(r.world, cfg.Combat.Pickups, r.rng)
	r.numbers = NewDamageNumberSystem(r.world, cfg.Combat.DamageNumbers)
	r.combo = NewComboSystem(r.state, cfg.Combat.Combo)
	r.damage = NewDamageSystem(r.world, cfg, r.state, r.rng, r.powerUps, r.pickups)
	r.collision = NewCollisionSystem(r.world, cfg, r.damage, r.combo, r.numbers, r.powerUps)
	r.bounds = NewBoundsSystem(r.world, cfg.Combat, r.damage)
	return r
}

// spawnEnemy 在指定位置生成一个难度 1、白天的敌人
func (r *testRig) spawnEnemy(kind types.EnemyKind, behavior types.BehaviorType, x, y float64) ecs.EntityID {
	id, _ := r.world.Enemies.Create(entities.NewEnemy(r.cfg.Enemies, entities.EnemySpawn{
		Kind:       kind,
		Behavior:   behavior,
		X:          x,
		Y:          y,
		Difficulty: 1,
	}))
	return id
}

// countProjectiles 统计指定阵营的存活子弹
func (r *testRig) countProjectiles(owner types.ProjectileOwner) int {
	n := 0
	r.world.Projectiles.Each(func(_ ecs.EntityID, p *entities.Projectile) {
		if p.Owner == owner {
			n++
		}
	})
	return n
}
