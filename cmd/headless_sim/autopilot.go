package main

import (
	"math"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/scenes"
	"github.com/decker502/jetstrike/pkg/types"
)

// 自动驾驶参数
const (
	anchorFraction = 0.2 // 玩家保持在视口宽度的 20% 处
	anchorSlack    = 2.0
	rowSlack       = 1.0
	weaponPeriod   = 300 // 每隔多少帧切换一次武器
)

// Autopilot 根据快照生成输入意图
// 始终开火，纵向对准最近的敌人，定期轮换武器并拾取武器
type Autopilot struct {
	ticks  int
	weapon types.WeaponKind
}

// Decide 生成本帧的输入意图
func (a *Autopilot) Decide(snap scenes.Snapshot) components.InputIntent {
	a.ticks++
	intent := components.InputIntent{Fire: true, Interact: snap.PickupPrompt}

	p := snap.Player
	cam := snap.Camera
	anchor := cam.Left + (cam.Right-cam.Left)*anchorFraction
	switch {
	case p.X > anchor+anchorSlack:
		intent.MoveLeft = true
	case p.X < anchor-anchorSlack:
		intent.MoveRight = true
	}

	if target, ok := nearestAhead(snap.Enemies, p.X, p.Y); ok {
		switch {
		case target.Y > p.Y+rowSlack:
			intent.MoveUp = true
		case target.Y < p.Y-rowSlack:
			intent.MoveDown = true
		}
	}

	if snap.Weapon.Overheated {
		a.weapon = types.WeaponPrimary
	} else if a.ticks%weaponPeriod == 0 {
		a.weapon = types.WeaponKind((int(a.weapon) + 1) % len(types.AllWeaponKinds))
	}
	if snap.Weapon.Kind != a.weapon {
		switch a.weapon {
		case types.WeaponPrimary:
			intent.SelectWeapon1 = true
		case types.WeaponSpread:
			intent.SelectWeapon2 = true
		case types.WeaponBeam:
			intent.SelectWeapon3 = true
		}
	}

	return intent
}

// nearestAhead 返回玩家右侧最近的敌人
func nearestAhead(enemies []scenes.EnemyView, px, py float64) (scenes.EnemyView, bool) {
	var (
		best  scenes.EnemyView
		found bool
		bestD = math.Inf(1)
	)
	for _, e := range enemies {
		if e.X <= px {
			continue
		}
		d := math.Hypot(e.X-px, e.Y-py)
		if d < bestD {
			best, bestD, found = e, d, true
		}
	}
	return best, found
}
