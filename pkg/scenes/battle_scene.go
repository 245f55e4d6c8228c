package scenes

import (
	"log"
	"math/rand"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/game"
	"github.com/decker502/jetstrike/pkg/systems"
)

// BattleScene 战斗模拟驱动器
//
// 独占本局所有实体集合，每帧按固定顺序推进各系统：
//
//	时钟 → 出怪 → 玩家 → 敌人 → 道具 → 武器拾取物 → 伤害数字
//	→ 碰撞 → 连击计时 → 越界清理 → 统一删除 → 死亡倒计时
//
// 暂停时跳过整帧；游戏结束后不再推进，直到 Restart
type BattleScene struct {
	cfg   *config.GameConfig
	rng   *rand.Rand
	state *game.GameState
	world *entities.World

	difficulty *systems.DifficultyEngine
	spawner    *systems.WaveSpawnSystem
	weapons    *systems.WeaponSystem
	player     *systems.PlayerSystem
	enemies    *systems.EnemySystem
	powerUps   *systems.PowerUpSystem
	pickups    *systems.WeaponPickupSystem
	numbers    *systems.DamageNumberSystem
	combo      *systems.ComboSystem
	damage     *systems.DamageSystem
	collision  *systems.CollisionSystem
	bounds     *systems.BoundsSystem

	lastFire      systems.FireResult
	lastCollision systems.CollisionResult
}

// NewBattleScene 创建战斗场景
//
// 参数:
//   - cfg: 游戏配置（调用方保证已校验）
//   - seed: 随机种子，相同种子与输入序列产生相同结果
//
// 返回:
//   - *BattleScene: 处于开局状态的场景
func NewBattleScene(cfg *config.GameConfig, seed int64) *BattleScene {
	rng := rand.New(rand.NewSource(seed))
	state := game.NewGameState()
	world := entities.NewWorld(cfg)

	s := &BattleScene{
		cfg:   cfg,
		rng:   rng,
		state: state,
		world: world,
	}

	s.difficulty = systems.NewDifficultyEngine(cfg.World)
	s.spawner = systems.NewWaveSpawnSystem(world, cfg.Spawn, cfg.Enemies, rng)
	s.weapons = systems.NewWeaponSystem(world, cfg)
	s.player = systems.NewPlayerSystem(world, cfg, s.weapons)
	s.enemies = systems.NewEnemySystem(world, cfg.Enemies, rng)
	s.powerUps = systems.NewPowerUpSystem(world, cfg, rng)
	s.pickups = systems.NewWeaponPickupSystem(world, cfg.Combat.Pickups, rng)
	s.numbers = systems.NewDamageNumberSystem(world, cfg.Combat.DamageNumbers)
	s.combo = systems.NewComboSystem(state, cfg.Combat.Combo)
	s.damage = systems.NewDamageSystem(world, cfg, state, rng, s.powerUps, s.pickups)
	s.collision = systems.NewCollisionSystem(world, cfg, s.damage, s.combo, s.numbers, s.powerUps)
	s.bounds = systems.NewBoundsSystem(world, cfg.Combat, s.damage)

	log.Printf("[BattleScene] created (seed=%d)", seed)
	return s
}

// Update 推进一帧
//
// 参数:
//   - dt: 本帧时长（秒），<= 0 时忽略
//   - intent: 本帧输入意图
func (s *BattleScene) Update(dt float64, intent components.InputIntent) {
	if s.state.GameOver || s.state.Paused || dt <= 0 {
		return
	}

	wasDead := !s.world.Player.Alive()

	s.difficulty.Update(dt)
	level := s.difficulty.Level()

	s.spawner.Update(dt, level, s.difficulty.IsNight())
	s.lastFire = s.player.Update(dt, intent)
	s.enemies.Update(dt, level)
	s.powerUps.Update(dt)
	s.pickups.Update(dt, intent.Interact)
	s.numbers.Update(dt)

	s.lastCollision = s.collision.Update(s.lastFire.Beam)
	s.combo.Update(dt)

	s.bounds.Update()
	s.world.RemoveMarkedEntities()

	// 死亡后的下一帧开始倒计时
	if wasDead {
		p := s.world.Player
		p.DeathTimer -= dt
		if p.DeathTimer <= 0 {
			s.state.TriggerGameOver()
		}
	}
}

// Restart 重置为开局状态
// 分数归零时通知 OnScoreChanged(0)，监听者保持不变
func (s *BattleScene) Restart() {
	s.world.Reset(s.cfg)
	s.difficulty.Reset()
	s.spawner.Reset()
	s.combo.Reset()
	s.state.Reset()
	s.lastFire = systems.FireResult{}
	s.lastCollision = systems.CollisionResult{}
	log.Printf("[BattleScene] restarted")
}

// SetPaused 设置暂停
func (s *BattleScene) SetPaused(paused bool) {
	if s.state.Paused != paused {
		log.Printf("[BattleScene] paused=%v", paused)
	}
	s.state.SetPaused(paused)
}

// IsPaused 是否暂停
func (s *BattleScene) IsPaused() bool {
	return s.state.Paused
}

// IsGameOver 是否已结束
func (s *BattleScene) IsGameOver() bool {
	return s.state.GameOver
}

// SetViewport 更新可玩区域（窗口尺寸变化时调用）
func (s *BattleScene) SetViewport(cam components.CameraComponent) {
	s.world.Camera = cam
}

// SetShield 为玩家开启护盾；duration <= 0 表示持续到 ClearShield
func (s *BattleScene) SetShield(duration float64) {
	s.player.SetShield(duration)
}

// ClearShield 关闭玩家护盾
func (s *BattleScene) ClearShield() {
	s.player.ClearShield()
}

// OnScoreChanged 注册分数变化回调
func (s *BattleScene) OnScoreChanged(fn func(total int)) {
	s.state.OnScoreChanged = fn
}

// OnGameOver 注册游戏结束回调
func (s *BattleScene) OnGameOver(fn func(finalScore int)) {
	s.state.OnGameOver = fn
}

// Snapshot 返回当前帧的只读快照
func (s *BattleScene) Snapshot() Snapshot {
	return s.buildSnapshot()
}

// Result 本局结果（用于纪录）
func (s *BattleScene) Result() game.RunResult {
	return game.RunResult{
		Score:    s.state.GetScore(),
		Combo:    s.combo.Best(),
		Survival: s.difficulty.Elapsed(),
	}
}

// LastFire 最近一帧的开火结果
func (s *BattleScene) LastFire() systems.FireResult {
	return s.lastFire
}

// LastCollision 最近一帧的碰撞统计
func (s *BattleScene) LastCollision() systems.CollisionResult {
	return s.lastCollision
}

// World 返回实体集合（测试与调试使用）
func (s *BattleScene) World() *entities.World {
	return s.world
}

// State 返回游戏状态
func (s *BattleScene) State() *game.GameState {
	return s.state
}

// Spawner 返回出怪系统
func (s *BattleScene) Spawner() *systems.WaveSpawnSystem {
	return s.spawner
}

// Difficulty 返回难度引擎
func (s *BattleScene) Difficulty() *systems.DifficultyEngine {
	return s.difficulty
}

// Combo 返回连击系统
func (s *BattleScene) Combo() *systems.ComboSystem {
	return s.combo
}

// PowerUps 返回道具系统
func (s *BattleScene) PowerUps() *systems.PowerUpSystem {
	return s.powerUps
}

// Pickups 返回武器拾取系统
func (s *BattleScene) Pickups() *systems.WeaponPickupSystem {
	return s.pickups
}

// Damage 返回伤害结算系统
func (s *BattleScene) Damage() *systems.DamageSystem {
	return s.damage
}
