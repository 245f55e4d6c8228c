package entities

import (
	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/ecs"
)

// 各类实体的初始容量
const (
	enemyCapacity      = 64
	projectileCapacity = 256
	pickupCapacity     = 16
)

// World 持有本局所有实体集合
// 由模拟驱动器独占所有权，各系统只通过引用标记删除或追加实体
type World struct {
	Player        *Player
	Enemies       *ecs.Arena[Enemy]
	Projectiles   *ecs.Arena[Projectile]
	PowerUps      *ecs.Arena[PowerUp]
	Pickups       *ecs.Arena[WeaponPickup]
	DamageNumbers *ecs.Arena[DamageNumber]

	Camera components.CameraComponent
}

// NewWorld 创建新的世界
func NewWorld(cfg *config.GameConfig) *World {
	return &World{
		Player:        NewPlayer(cfg),
		Enemies:       ecs.NewArena[Enemy](enemyCapacity),
		Projectiles:   ecs.NewArena[Projectile](projectileCapacity),
		PowerUps:      ecs.NewArena[PowerUp](pickupCapacity),
		Pickups:       ecs.NewArena[WeaponPickup](pickupCapacity),
		DamageNumbers: ecs.NewArena[DamageNumber](projectileCapacity),
		Camera:        NewCamera(cfg.World.Viewport.Height, cfg.World.Viewport.Aspect),
	}
}

// Reset 清空全部实体并重建玩家，视口保持不变
func (w *World) Reset(cfg *config.GameConfig) {
	w.Player = NewPlayer(cfg)
	w.Enemies.Clear()
	w.Projectiles.Clear()
	w.PowerUps.Clear()
	w.Pickups.Clear()
	w.DamageNumbers.Clear()
}

// RemoveMarkedEntities 清理所有集合中标记删除的实体
func (w *World) RemoveMarkedEntities() int {
	return w.Enemies.RemoveMarkedEntities() +
		w.Projectiles.RemoveMarkedEntities() +
		w.PowerUps.RemoveMarkedEntities() +
		w.Pickups.RemoveMarkedEntities() +
		w.DamageNumbers.RemoveMarkedEntities()
}

// NewCamera 创建以原点为中心的视口
//
// 参数:
//   - height: 视口高度（世界单位）
//   - aspect: 宽高比
func NewCamera(height, aspect float64) components.CameraComponent {
	halfH := height / 2
	halfW := height * aspect / 2
	return components.CameraComponent{
		Left:   -halfW,
		Right:  halfW,
		Top:    halfH,
		Bottom: -halfH,
	}
}

// CenterY 视口垂直中心
func CenterY(cam components.CameraComponent) float64 {
	return (cam.Top + cam.Bottom) / 2
}

// HalfHeight 视口半高
func HalfHeight(cam components.CameraComponent) float64 {
	return (cam.Top - cam.Bottom) / 2
}

// InCamera 判断点是否位于视口内
func InCamera(cam components.CameraComponent, x, y float64) bool {
	return x >= cam.Left && x <= cam.Right && y >= cam.Bottom && y <= cam.Top
}
