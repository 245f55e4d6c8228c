package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// movementFunc 单个行为的移动规则，只负责写入速度
type movementFunc func(s *EnemySystem, e *entities.Enemy, dt float64)

// movementTable 行为到移动规则的分派表，按 BehaviorType 下标
var movementTable = [...]movementFunc{
	types.BehaviorSolo:      (*EnemySystem).moveSolo,
	types.BehaviorFormation: (*EnemySystem).moveFormation,
	types.BehaviorSwarm:     (*EnemySystem).moveSwarm,
}

// EnemySystem 敌人行为系统
// 每帧按行为分派移动、处理五边形射击，并更新每个敌人拥有的子弹
type EnemySystem struct {
	world *entities.World
	cfg   *config.EnemyStatsConfig
	rng   *rand.Rand
}

// NewEnemySystem 创建敌人行为系统
func NewEnemySystem(world *entities.World, cfg *config.EnemyStatsConfig, rng *rand.Rand) *EnemySystem {
	return &EnemySystem{world: world, cfg: cfg, rng: rng}
}

// Update 更新所有存活敌人
//
// 参数:
//   - dt: 本帧时长（秒）
//   - difficulty: 当前难度（影响射击冷却）
//
// 返回:
//   - int: 本帧发射的敌方子弹数
func (s *EnemySystem) Update(dt, difficulty float64) int {
	shots := 0
	s.world.Enemies.Each(func(id ecs.EntityID, e *entities.Enemy) {
		e.Time += dt

		if move := movementFor(e.Behavior); move != nil {
			move(s, e, dt)
		}
		e.Position.X += e.Velocity.VX * dt
		e.Position.Y += e.Velocity.VY * dt

		if e.Shoots && s.updateShooting(id, e, dt, difficulty) {
			shots++
		}
		s.updateShots(e, dt)
	})
	return shots
}

func movementFor(b types.BehaviorType) movementFunc {
	if b < 0 || int(b) >= len(movementTable) {
		return nil
	}
	return movementTable[b]
}

// moveSolo 朝玩家当前位置移动，水平分量始终向左，垂直分量减速
func (s *EnemySystem) moveSolo(e *entities.Enemy, _ float64) {
	p := s.world.Player.Position
	dx := p.X - e.Position.X
	dy := p.Y - e.Position.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	e.Velocity.VX = -math.Abs(dx/dist) * e.Speed
	e.Velocity.VY = dy / dist * e.Speed * s.cfg.Movement.SoloVerticalDamping
}

// moveFormation 编队：恒定向左；正弦编队用比例控制追踪目标高度，V 字编队保持队形
func (s *EnemySystem) moveFormation(e *entities.Enemy, _ float64) {
	m := s.cfg.Movement
	e.Velocity.VX = -e.Speed * m.FormationSpeedFactor

	switch e.Formation.Shape {
	case types.FormationSine:
		target := e.Formation.BaseY + math.Sin(e.Time*m.SineFrequency+float64(e.Formation.Index))*m.SineAmplitude
		e.Velocity.VY = (target - e.Position.Y) * m.SineGain
	default:
		e.Velocity.VY = 0
	}
}

// moveSwarm 蜂群：随机重抽向左偏置的速度，垂直速度按帧衰减，并保证持续向左
func (s *EnemySystem) moveSwarm(e *entities.Enemy, _ float64) {
	m := s.cfg.Movement
	if s.rng.Float64() < m.SwarmRedrawChance {
		e.Velocity.VX = -e.Speed * (0.5 + s.rng.Float64()*0.5)
		e.Velocity.VY = signedUnit(s.rng) * e.Speed
	}

	e.Velocity.VY *= m.SwarmVerticalDecay

	if e.Velocity.VX > -e.Speed*m.SwarmMinSpeedFactor {
		e.Velocity.VX = -e.Speed * m.SwarmFloorFactor
	}
}

// updateShooting 射击冷却倒计时，归零时向玩家当前位置发射子弹
// 冷却重置为 baseCooldown / difficulty
func (s *EnemySystem) updateShooting(id ecs.EntityID, e *entities.Enemy, dt, difficulty float64) bool {
	if e.ShootCooldown > 0 {
		e.ShootCooldown -= dt
	}
	if e.ShootCooldown > 0 {
		return false
	}

	if difficulty <= 0 {
		difficulty = 1
	}
	e.ShootCooldown = s.cfg.Shooter.BaseCooldown / difficulty

	p := s.world.Player.Position
	shot, ok := entities.NewEnemyShot(id, e.Position.X, e.Position.Y, p.X, p.Y, s.cfg.Shooter.ProjectileSpeed, s.cfg.Shooter.ProjectileDamage)
	if !ok {
		return false
	}
	shotID, _ := s.world.Projectiles.Create(shot)
	e.Shots = append(e.Shots, shotID)
	return true
}

// updateShots 移动本敌人拥有的子弹，并丢弃已失效的句柄
func (s *EnemySystem) updateShots(e *entities.Enemy, dt float64) {
	live := e.Shots[:0]
	for _, shotID := range e.Shots {
		shot, ok := s.world.Projectiles.Get(shotID)
		if !ok {
			continue
		}
		shot.Position.X += shot.Velocity.VX * dt
		shot.Position.Y += shot.Velocity.VY * dt
		live = append(live, shotID)
	}
	e.Shots = live
}
