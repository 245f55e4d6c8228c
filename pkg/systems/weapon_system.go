package systems

import (
	"log"
	"math"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// FireResult 一次开火尝试的结果
type FireResult struct {
	Fired       bool // 是否实际发射（子弹或光束）
	Projectiles int  // 生成的子弹数量
	Beam        bool // 本帧光束是否激活
	FellBack    bool // 资源耗尽，已切换回主武器
	Overheated  bool // 本次开火导致光束过热
}

// WeaponSystem 负责玩家武器的选择与开火
type WeaponSystem struct {
	world *entities.World
	cfg   *config.GameConfig
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(world *entities.World, cfg *config.GameConfig) *WeaponSystem {
	return &WeaponSystem{world: world, cfg: cfg}
}

// SelectWeapon 切换到指定武器
// 目标武器没有弹药或能量时回退到主武器，返回 false
func (s *WeaponSystem) SelectWeapon(kind types.WeaponKind) bool {
	if !kind.Valid() {
		return false
	}
	p := s.world.Player
	if !HasResource(p.Slot(kind)) {
		p.Weapons.Active = types.WeaponPrimary
		return false
	}
	p.Weapons.Active = kind
	return true
}

// EnsureUsable 当前武器资源耗尽时自动回退到主武器
func (s *WeaponSystem) EnsureUsable() bool {
	p := s.world.Player
	if HasResource(p.ActiveSlot()) {
		return false
	}
	log.Printf("[WeaponSystem] %s depleted, falling back to primary", p.Weapons.Active)
	p.Weapons.Active = types.WeaponPrimary
	return true
}

// Fire 尝试用指定武器开火
//
// 参数:
//   - kind: 武器种类
//   - dt: 本帧时长（光束按时长消耗能量、积累热量）
//
// 返回:
//   - FireResult: 资源不足时 Fired 为 false、不产生子弹或光束，并回退到主武器
func (s *WeaponSystem) Fire(kind types.WeaponKind, dt float64) FireResult {
	p := s.world.Player
	slot := p.Slot(kind)

	switch kind {
	case types.WeaponSpread:
		if !ConsumeAmmo(slot) {
			p.Weapons.Active = types.WeaponPrimary
			return FireResult{FellBack: true}
		}
		n := s.spawnSpread(slot.Damage)
		p.Weapons.Cooldown = slot.FireInterval
		return FireResult{Fired: true, Projectiles: n}

	case types.WeaponBeam:
		if slot.Overheated {
			return FireResult{}
		}
		if DrainCharge(slot, dt) <= 0 {
			p.Weapons.Active = types.WeaponPrimary
			return FireResult{FellBack: true}
		}
		p.Weapons.BeamActive = true
		overheated := AccrueHeat(slot, dt)
		if overheated {
			log.Printf("[WeaponSystem] beam overheated")
		}
		return FireResult{Fired: true, Beam: true, Overheated: overheated}

	default:
		s.spawnBullet(0, slot.Damage)
		p.Weapons.Cooldown = slot.FireInterval
		return FireResult{Fired: true, Projectiles: 1}
	}
}

// spawnSpread 以扇形发射散射弹丸，两端角度包含在内
func (s *WeaponSystem) spawnSpread(damage float64) int {
	stats := s.cfg.Weapons.GetWeaponStats(types.WeaponSpread)
	n := stats.Pellets
	if n == 1 {
		s.spawnBullet(0, damage)
		return 1
	}
	for i := 0; i < n; i++ {
		deg := float64(i)/float64(n-1)*stats.SpreadDegrees - stats.SpreadDegrees/2
		s.spawnBullet(deg*math.Pi/180, damage)
	}
	return n
}

func (s *WeaponSystem) spawnBullet(angle, damage float64) {
	p := s.world.Player
	proj := s.cfg.Weapons.Projectile
	s.world.Projectiles.Create(entities.NewPlayerBullet(
		p.Position.X+proj.MuzzleX,
		p.Position.Y+proj.MuzzleY,
		angle, proj.Speed, damage, proj.Drop,
	))
}
