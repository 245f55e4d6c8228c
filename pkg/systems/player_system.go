package systems

import (
	"math"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// PlayerSystem 每帧更新玩家：选武器、移动、燃料、开火，以及玩家子弹的飞行
type PlayerSystem struct {
	world   *entities.World
	cfg     *config.GameConfig
	weapons *WeaponSystem
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(world *entities.World, cfg *config.GameConfig, weapons *WeaponSystem) *PlayerSystem {
	return &PlayerSystem{world: world, cfg: cfg, weapons: weapons}
}

// Update 更新玩家状态
//
// 参数:
//   - dt: 本帧时长（秒）
//   - intent: 本帧输入意图
//
// 返回:
//   - FireResult: 本帧开火结果（未尝试开火时为零值）
func (s *PlayerSystem) Update(dt float64, intent components.InputIntent) FireResult {
	p := s.world.Player
	p.Weapons.BeamActive = false

	s.updateBullets(dt)

	if !p.Alive() {
		// 死亡后只受重力下坠
		p.Velocity.VX *= s.cfg.Player.Friction
		p.Velocity.VY -= s.cfg.Player.Gravity * dt
		s.integrate(dt)
		return FireResult{}
	}

	s.updateShield(dt)
	s.handleWeaponSelection(intent)
	s.handleMovement(dt, intent)
	return s.handleWeaponFiring(dt, intent)
}

// handleWeaponSelection 处理切换武器，后面的按键优先
func (s *PlayerSystem) handleWeaponSelection(intent components.InputIntent) {
	if intent.SelectWeapon1 {
		s.weapons.SelectWeapon(types.WeaponPrimary)
	}
	if intent.SelectWeapon2 {
		s.weapons.SelectWeapon(types.WeaponSpread)
	}
	if intent.SelectWeapon3 {
		s.weapons.SelectWeapon(types.WeaponBeam)
	}
	s.weapons.EnsureUsable()
}

// handleMovement 处理移动与燃料
func (s *PlayerSystem) handleMovement(dt float64, intent components.InputIntent) {
	p := s.world.Player
	jp := &p.Jetpack
	pc := s.cfg.Player

	speed := pc.BaseSpeed * (1 + jp.SpeedBonus)
	hasFuel := jp.Unlimited || jp.Fuel > 0

	switch {
	case intent.MoveLeft:
		p.Velocity.VX = -speed
	case intent.MoveRight:
		p.Velocity.VX = speed
	default:
		p.Velocity.VX *= pc.Friction
	}

	switch {
	case intent.MoveUp && hasFuel:
		p.Velocity.VY = speed
	case intent.MoveDown:
		p.Velocity.VY = -speed
	default:
		p.Velocity.VY -= pc.Gravity * dt
	}

	sideways := intent.MoveLeft || intent.MoveRight
	if !jp.Unlimited {
		if (intent.MoveUp || sideways) && jp.Fuel > 0 {
			use := 0.0
			if intent.MoveUp {
				use += jp.Consumption
			}
			if sideways {
				use += jp.Consumption * pc.SidewaysFuelFactor
			}
			jp.Fuel = math.Max(0, jp.Fuel-use*dt)
		} else {
			jp.Fuel = math.Min(jp.MaxFuel, jp.Fuel+jp.Regen*dt)
		}
	}

	s.integrate(dt)
}

// integrate 积分位置并限制在视口内
func (s *PlayerSystem) integrate(dt float64) {
	p := s.world.Player
	cam := s.world.Camera
	margin := s.cfg.Player.Margin

	p.Position.X += p.Velocity.VX * dt
	p.Position.Y += p.Velocity.VY * dt
	p.Position.X = clamp(p.Position.X, cam.Left+margin, cam.Right-margin)
	p.Position.Y = clamp(p.Position.Y, cam.Bottom+margin, cam.Top-margin)
}

// handleWeaponFiring 处理冷却、光束散热与开火
func (s *PlayerSystem) handleWeaponFiring(dt float64, intent components.InputIntent) FireResult {
	p := s.world.Player
	w := &p.Weapons

	if w.Cooldown > 0 {
		w.Cooldown -= dt
	}

	beamFiring := intent.Fire && w.Active == types.WeaponBeam
	CoolWeapon(p.Slot(types.WeaponBeam), dt, beamFiring)

	// 光束没有射击间隔，只受能量与过热限制
	if !intent.Fire || (w.Cooldown > 0 && w.Active != types.WeaponBeam) {
		return FireResult{}
	}

	result := s.weapons.Fire(w.Active, dt)
	// 每次开火尝试都有轻微后坐力
	p.Velocity.VX -= s.cfg.Player.Recoil * dt
	return result
}

// updateShield 推进限时护盾
func (s *PlayerSystem) updateShield(dt float64) {
	sh := &s.world.Player.Shield
	if !sh.Active || !sh.Timed {
		return
	}
	sh.Remaining -= dt
	if sh.Remaining <= 0 {
		sh.Active = false
		sh.Timed = false
		sh.Remaining = 0
	}
}

// SetShield 开启护盾；duration <= 0 表示持续到 ClearShield
func (s *PlayerSystem) SetShield(duration float64) {
	sh := &s.world.Player.Shield
	sh.Active = true
	sh.Timed = duration > 0
	sh.Remaining = duration
}

// ClearShield 关闭护盾
func (s *PlayerSystem) ClearShield() {
	s.world.Player.Shield = components.ShieldComponent{}
}

// updateBullets 玩家子弹飞行：直线运动叠加下坠
func (s *PlayerSystem) updateBullets(dt float64) {
	s.world.Projectiles.Each(func(_ ecs.EntityID, b *entities.Projectile) {
		if b.Owner != types.OwnerPlayer {
			return
		}
		b.Position.X += b.Velocity.VX * dt
		b.Position.Y += b.Velocity.VY * dt
		b.Position.Y -= b.Drop * dt * dt
	})
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
