package scenes

import (
	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// Snapshot 一帧结束时供界面层读取的只读状态
// 所有字段都是值拷贝，持有快照不会影响模拟
type Snapshot struct {
	Score    int
	Kills    int
	Paused   bool
	GameOver bool

	Player PlayerView
	Weapon WeaponView

	Combo     int
	BestCombo int

	Difficulty float64
	Elapsed    float64
	Night      bool
	Transition float64 // 昼夜过渡进度 0..1
	Biome      int
	Waves      int

	// PickupPrompt 是否有武器拾取物处于交互范围内
	PickupPrompt bool

	Camera components.CameraComponent

	Enemies       []EnemyView
	Projectiles   []ProjectileView
	PowerUps      []PowerUpView
	Pickups       []PickupView
	DamageNumbers []DamageNumberView
}

// PlayerView 玩家状态
type PlayerView struct {
	X, Y         float64
	Health       float64
	MaxHealth    float64
	Fuel         float64
	MaxFuel      float64
	JetpackLevel int
	Shake        float64
	Shielded     bool
	Alive        bool
	BeamActive   bool
}

// WeaponView 当前武器状态
type WeaponView struct {
	Kind       types.WeaponKind
	Ammo       int
	MaxAmmo    int
	Unlimited  bool
	Charge     float64
	MaxCharge  float64
	Heat       float64
	MaxHeat    float64
	Overheated bool
}

// EnemyView 敌人绘制数据
type EnemyView struct {
	ID             ecs.EntityID
	Kind           types.EnemyKind
	Behavior       types.BehaviorType
	X, Y           float64
	Size           float64
	HealthFraction float64
}

// ProjectileView 子弹绘制数据
type ProjectileView struct {
	Owner types.ProjectileOwner
	X, Y  float64
	Angle float64
}

// PowerUpView 道具绘制数据
type PowerUpView struct {
	Kind types.PowerUpKind
	X, Y float64
}

// PickupView 武器拾取物绘制数据
type PickupView struct {
	Kind     types.WeaponKind
	X, Y     float64
	InRange  bool
	Lifetime float64 // 剩余时间
}

// DamageNumberView 伤害数字绘制数据
type DamageNumberView struct {
	Beam   bool
	Amount float64
	X, Y   float64
	Alpha  float64 // 剩余寿命比例
}

// buildSnapshot 从世界状态构建快照
func (s *BattleScene) buildSnapshot() Snapshot {
	w := s.world
	p := w.Player
	active := p.ActiveSlot()
	env := s.difficulty.Environment()

	snap := Snapshot{
		Score:    s.state.GetScore(),
		Kills:    s.state.Kills,
		Paused:   s.state.Paused,
		GameOver: s.state.GameOver,
		Player: PlayerView{
			X:            p.Position.X,
			Y:            p.Position.Y,
			Health:       p.Health.Current,
			MaxHealth:    p.Health.Max,
			Fuel:         p.Jetpack.Fuel,
			MaxFuel:      p.Jetpack.MaxFuel,
			JetpackLevel: p.Jetpack.Level,
			Shake:        p.Jetpack.Shake,
			Shielded:     p.Shield.Active,
			Alive:        p.Alive(),
			BeamActive:   p.Weapons.BeamActive,
		},
		Weapon: WeaponView{
			Kind:       active.Kind,
			Ammo:       active.Ammo,
			MaxAmmo:    active.MaxAmmo,
			Unlimited:  active.UnlimitedAmmo,
			Charge:     active.Charge,
			MaxCharge:  active.MaxCharge,
			Heat:       active.Heat,
			MaxHeat:    active.MaxHeat,
			Overheated: active.Overheated,
		},
		Combo:        s.combo.Count(),
		BestCombo:    s.combo.Best(),
		Difficulty:   s.difficulty.Level(),
		Elapsed:      s.difficulty.Elapsed(),
		Night:        env.IsNight,
		Transition:   env.TransitionProgress,
		Biome:        env.Biome,
		Waves:        s.spawner.WavesSpawned(),
		PickupPrompt: s.pickups.PromptVisible(),
		Camera:       w.Camera,
	}

	w.Enemies.Each(func(id ecs.EntityID, e *entities.Enemy) {
		frac := 0.0
		if e.Health.Max > 0 {
			frac = e.Health.Current / e.Health.Max
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:             id,
			Kind:           e.Kind,
			Behavior:       e.Behavior,
			X:              e.Position.X,
			Y:              e.Position.Y,
			Size:           e.Size,
			HealthFraction: frac,
		})
	})
	w.Projectiles.Each(func(_ ecs.EntityID, b *entities.Projectile) {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Owner: b.Owner,
			X:     b.Position.X,
			Y:     b.Position.Y,
			Angle: b.Angle,
		})
	})
	w.PowerUps.Each(func(_ ecs.EntityID, pu *entities.PowerUp) {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{Kind: pu.Kind, X: pu.Position.X, Y: pu.Position.Y})
	})
	w.Pickups.Each(func(_ ecs.EntityID, wp *entities.WeaponPickup) {
		snap.Pickups = append(snap.Pickups, PickupView{
			Kind:     wp.Kind,
			X:        wp.Position.X,
			Y:        wp.Position.Y,
			InRange:  wp.InRange,
			Lifetime: wp.Lifetime.Remaining,
		})
	})
	w.DamageNumbers.Each(func(_ ecs.EntityID, n *entities.DamageNumber) {
		alpha := 0.0
		if n.Lifetime.Duration > 0 {
			alpha = n.Lifetime.Remaining / n.Lifetime.Duration
		}
		snap.DamageNumbers = append(snap.DamageNumbers, DamageNumberView{
			Beam:   n.Beam,
			Amount: n.Amount,
			X:      n.Position.X,
			Y:      n.Position.Y,
			Alpha:  alpha,
		})
	})

	return snap
}
