package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/game"
)

// DamageSystem 结算敌人与玩家受到的伤害
//
// 敌人死亡只结算一次：计分、掉落、分裂，并标记自身与其子弹删除
type DamageSystem struct {
	world    *entities.World
	cfg      *config.GameConfig
	state    *game.GameState
	rng      *rand.Rand
	powerUps *PowerUpSystem
	pickups  *WeaponPickupSystem
}

// NewDamageSystem 创建伤害结算系统
//
// 参数:
//   - world: 实体集合
//   - cfg: 游戏配置
//   - state: 计分目标
//   - rng: 掉落与分裂使用的随机源
//   - powerUps, pickups: 掉落物生成
func NewDamageSystem(
	world *entities.World,
	cfg *config.GameConfig,
	state *game.GameState,
	rng *rand.Rand,
	powerUps *PowerUpSystem,
	pickups *WeaponPickupSystem,
) *DamageSystem {
	return &DamageSystem{
		world:    world,
		cfg:      cfg,
		state:    state,
		rng:      rng,
		powerUps: powerUps,
		pickups:  pickups,
	}
}

// DamageEnemy 对敌人造成伤害
//
// 注意：击杀时可能生成分裂子体，调用后之前取得的敌人指针不再可靠
//
// 返回:
//   - bool: 本次伤害是否击杀了该敌人
func (s *DamageSystem) DamageEnemy(id ecs.EntityID, amount float64) bool {
	e, ok := s.world.Enemies.Get(id)
	if !ok || e.Health.Dead || amount <= 0 {
		return false
	}

	e.Health.Current -= amount
	if e.Health.Current > 0 {
		return false
	}
	e.Health.Current = 0
	e.Health.Dead = true

	// 复制一份，生成子体会让指针失效
	dead := *e
	s.killEnemy(id, &dead)
	return true
}

// killEnemy 结算击杀：计分、掉落、分裂、清理子弹
func (s *DamageSystem) killEnemy(id ecs.EntityID, e *entities.Enemy) {
	s.state.AddScore(e.Points)
	s.state.AddKill()

	drops := s.cfg.Combat.Drops
	if s.rng.Float64() < drops.PowerUpChance {
		s.powerUps.SpawnDrop(e.Position.X, e.Position.Y)
	}
	if s.rng.Float64() < drops.WeaponChance {
		s.pickups.SpawnDrop(e.Position.X, e.Position.Y, s.world.Player.Weapons.Active)
	}

	split := s.cfg.Enemies.Split
	if entities.CanSplit(e, split) {
		n := split.MinChildren
		if split.MaxChildren > split.MinChildren {
			n += s.rng.Intn(split.MaxChildren - split.MinChildren + 1)
		}
		for i := 0; i < n; i++ {
			s.world.Enemies.Create(entities.NewSplitChild(e, split, i, n))
		}
		log.Printf("[DamageSystem] %s split into %d", e.Kind, n)
	}

	s.releaseShots(e)
	s.world.Enemies.DestroyEntity(id)
}

// RemoveEnemy 移除敌人及其子弹，不计分不掉落（越界清理使用）
func (s *DamageSystem) RemoveEnemy(id ecs.EntityID) {
	e, ok := s.world.Enemies.Get(id)
	if !ok {
		return
	}
	s.releaseShots(e)
	s.world.Enemies.DestroyEntity(id)
}

func (s *DamageSystem) releaseShots(e *entities.Enemy) {
	for _, shotID := range e.Shots {
		s.world.Projectiles.DestroyEntity(shotID)
	}
}

// DamagePlayer 对玩家造成伤害
// 护盾开启或已死亡时无效；生命值归零时只死亡一次并启动死亡倒计时
//
// 返回:
//   - bool: 本次伤害是否生效
func (s *DamageSystem) DamagePlayer(amount float64) bool {
	p := s.world.Player
	if !p.Alive() || p.Shield.Active || amount <= 0 {
		return false
	}

	p.Health.Current -= amount
	if p.Health.Current <= 0 {
		p.Health.Current = 0
		p.Health.Dead = true
		p.DeathTimer = s.cfg.Player.DeathDelay
		log.Printf("[DamageSystem] Player died, score %d", s.state.GetScore())
	}
	return true
}
