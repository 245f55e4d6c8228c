package systems

import (
	"math"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// CollisionResult 一次碰撞结算的统计
type CollisionResult struct {
	BulletHits     int
	BeamHits       int
	Kills          int
	PlayerHits     int
	PowerUpsPicked int
}

// CollisionSystem 碰撞检测与结算
//
// 每帧按固定顺序执行：
//  1. 玩家子弹与敌人
//  2. 光束与敌人（仅当本帧光束激活）
//  3. 敌方子弹与玩家
//  4. 敌人本体与玩家
//  5. 道具拾取
//
// 所有遍历都基于句柄快照，结算中生成的分裂子体不影响当前遍历
type CollisionSystem struct {
	world   *entities.World
	cfg     *config.GameConfig
	damage  *DamageSystem
	combo   *ComboSystem
	numbers *DamageNumberSystem
	powerUp *PowerUpSystem
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(
	world *entities.World,
	cfg *config.GameConfig,
	damage *DamageSystem,
	combo *ComboSystem,
	numbers *DamageNumberSystem,
	powerUp *PowerUpSystem,
) *CollisionSystem {
	return &CollisionSystem{
		world:   world,
		cfg:     cfg,
		damage:  damage,
		combo:   combo,
		numbers: numbers,
		powerUp: powerUp,
	}
}

// Update 执行一次完整的碰撞结算
//
// 参数:
//   - beamFired: 本帧光束是否激活
func (s *CollisionSystem) Update(beamFired bool) CollisionResult {
	var r CollisionResult
	s.resolveBullets(&r)
	if beamFired {
		s.resolveBeam(&r)
	}
	s.resolveEnemyShots(&r)
	s.resolveContacts(&r)
	s.resolvePowerUps(&r)
	return r
}

// resolveBullets 每发子弹最多命中一个敌人（按槽位顺序第一个）
func (s *CollisionSystem) resolveBullets(r *CollisionResult) {
	radius := s.cfg.Combat.ProjectileRadius
	for _, bulletID := range s.world.Projectiles.IDs() {
		b, ok := s.world.Projectiles.Get(bulletID)
		if !ok || b.Owner != types.OwnerPlayer {
			continue
		}
		bx, by, dmg := b.Position.X, b.Position.Y, b.Damage

		for _, enemyID := range s.world.Enemies.IDs() {
			e, ok := s.world.Enemies.Get(enemyID)
			if !ok {
				continue
			}
			if distance(bx, by, e.Position.X, e.Position.Y) >= e.Size+radius {
				continue
			}

			s.world.Projectiles.DestroyEntity(bulletID)
			if s.damage.DamageEnemy(enemyID, dmg) {
				r.Kills++
			}
			s.numbers.SpawnBullet(dmg, bx, by)
			s.combo.RegisterHit()
			r.BulletHits++
			break
		}
	}
}

// resolveBeam 光束向右延伸，命中所有位于玩家右侧且与光束高度重叠的敌人
// 每帧造成名义伤害的固定比例
func (s *CollisionSystem) resolveBeam(r *CollisionResult) {
	p := s.world.Player
	beamY := p.Position.Y + s.cfg.Combat.BeamYOffset
	dmg := p.Slot(types.WeaponBeam).Damage * s.cfg.Combat.BeamTickFraction

	for _, enemyID := range s.world.Enemies.IDs() {
		e, ok := s.world.Enemies.Get(enemyID)
		if !ok {
			continue
		}
		if e.Position.X <= p.Position.X || math.Abs(e.Position.Y-beamY) >= e.Size {
			continue
		}

		s.numbers.AccumulateBeam(enemyID, e, dmg)
		if s.damage.DamageEnemy(enemyID, dmg) {
			r.Kills++
		}
		s.combo.RegisterHit()
		r.BeamHits++
	}
}

// resolveEnemyShots 敌方子弹命中玩家：子弹移除、玩家受伤、连击中断
func (s *CollisionSystem) resolveEnemyShots(r *CollisionResult) {
	p := s.world.Player
	radius := s.cfg.Combat.EnemyShotRadius

	for _, shotID := range s.world.Projectiles.IDs() {
		if !p.Alive() || p.Shield.Active {
			return
		}
		shot, ok := s.world.Projectiles.Get(shotID)
		if !ok || shot.Owner != types.OwnerEnemy {
			continue
		}
		if distance(shot.Position.X, shot.Position.Y, p.Position.X, p.Position.Y) >= radius {
			continue
		}

		s.world.Projectiles.DestroyEntity(shotID)
		s.damage.DamagePlayer(shot.Damage)
		s.combo.Break()
		r.PlayerHits++
	}
}

// resolveContacts 敌人撞击玩家
// 护盾开启时敌人直接被击毁；否则玩家受伤并被击退，敌人承受反伤
func (s *CollisionSystem) resolveContacts(r *CollisionResult) {
	p := s.world.Player
	c := s.cfg.Combat

	for _, enemyID := range s.world.Enemies.IDs() {
		if !p.Alive() {
			return
		}
		e, ok := s.world.Enemies.Get(enemyID)
		if !ok {
			continue
		}
		if distance(e.Position.X, e.Position.Y, p.Position.X, p.Position.Y) >= e.Size+c.PlayerHitbox {
			continue
		}

		if p.Shield.Active {
			if s.damage.DamageEnemy(enemyID, e.Health.Current) {
				r.Kills++
			}
			continue
		}

		ex, ey, contact := e.Position.X, e.Position.Y, e.Damage

		s.damage.DamagePlayer(contact)
		if p.Position.X < ex {
			p.Velocity.VX = -c.KnockbackX
		} else {
			p.Velocity.VX = c.KnockbackX
		}
		if p.Position.Y < ey {
			p.Velocity.VY = -c.KnockbackY
		} else {
			p.Velocity.VY = c.KnockbackY
		}

		if s.damage.DamageEnemy(enemyID, c.RamDamage) {
			r.Kills++
		}
		s.combo.Break()
		r.PlayerHits++
	}
}

// resolvePowerUps 拾取玩家附近的道具
func (s *CollisionSystem) resolvePowerUps(r *CollisionResult) {
	p := s.world.Player
	if !p.Alive() {
		return
	}
	radius := s.cfg.Combat.PowerUpRadius

	for _, id := range s.world.PowerUps.IDs() {
		pu, ok := s.world.PowerUps.Get(id)
		if !ok {
			continue
		}
		if distance(pu.Position.X, pu.Position.Y, p.Position.X, p.Position.Y) >= radius {
			continue
		}
		if s.powerUp.Collect(id) {
			r.PowerUpsPicked++
		}
	}
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
