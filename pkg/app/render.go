package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/jetstrike/pkg/scenes"
	"github.com/decker502/jetstrike/pkg/types"
	"github.com/decker502/jetstrike/pkg/utils"
)

// 调色板
var (
	dayColor       = color.RGBA{R: 120, G: 180, B: 235, A: 255}
	nightColor     = color.RGBA{R: 16, G: 20, B: 48, A: 255}
	playerColor    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	shieldColor    = color.RGBA{R: 90, G: 200, B: 255, A: 160}
	beamColor      = color.RGBA{R: 255, G: 80, B: 220, A: 220}
	playerShotClr  = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	enemyShotClr   = color.RGBA{R: 255, G: 90, B: 60, A: 255}
	healthBarBack  = color.RGBA{R: 60, G: 0, B: 0, A: 200}
	healthBarFront = color.RGBA{R: 80, G: 220, B: 80, A: 255}
)

// biomeTints 每个生物群系在背景色上叠加的色调
var biomeTints = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 0},
	{R: 40, G: 60, B: 0, A: 0},
	{R: 70, G: 20, B: 0, A: 0},
	{R: 0, G: 30, B: 60, A: 0},
}

var enemyColors = map[types.EnemyKind]color.RGBA{
	types.EnemyTriangle: {R: 250, G: 120, B: 80, A: 255},
	types.EnemySquare:   {R: 230, G: 200, B: 70, A: 255},
	types.EnemyCircle:   {R: 150, G: 100, B: 240, A: 255},
	types.EnemyPentagon: {R: 230, G: 70, B: 120, A: 255},
}

var powerUpColors = map[types.PowerUpKind]color.RGBA{
	types.PowerUpHealth:     {R: 230, G: 60, B: 60, A: 255},
	types.PowerUpFuel:       {R: 250, G: 160, B: 40, A: 255},
	types.PowerUpSpreadAmmo: {R: 250, G: 240, B: 90, A: 255},
	types.PowerUpBeamCharge: {R: 240, G: 90, B: 240, A: 255},
	types.PowerUpMobility:   {R: 90, G: 240, B: 160, A: 255},
}

// backgroundColor 按昼夜状态与过渡进度计算背景色
func backgroundColor(snap scenes.Snapshot) color.RGBA {
	from, to := dayColor, nightColor
	if snap.Night {
		from, to = nightColor, dayColor
	}
	base := from
	if snap.Transition > 0 {
		base = utils.LerpColor(from, to, utils.EaseInOutCubic(snap.Transition))
	}
	tint := biomeTints[snap.Biome%len(biomeTints)]
	return color.RGBA{
		R: addClamp(base.R, tint.R),
		G: addClamp(base.G, tint.G),
		B: addClamp(base.B, tint.B),
		A: 255,
	}
}

func addClamp(a, b uint8) uint8 {
	if int(a)+int(b) > 255 {
		return 255
	}
	return a + b
}

// drawWorld 绘制背景与全部实体
func drawWorld(screen *ebiten.Image, vp utils.Viewport, snap scenes.Snapshot, beamYOffset float64) {
	screen.Fill(backgroundColor(snap))
	scale := float32(vp.Scale())

	for _, pu := range snap.PowerUps {
		x, y := vp.WorldToScreen(pu.X, pu.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 1.5*scale, powerUpColors[pu.Kind], true)
	}

	for _, wp := range snap.Pickups {
		x, y := vp.WorldToScreen(wp.X, wp.Y)
		// 快消失时闪烁
		if wp.Lifetime < 3 && math.Mod(wp.Lifetime, 0.4) < 0.2 {
			continue
		}
		s := 2 * vp.Scale()
		vector.StrokeRect(screen, float32(x-s), float32(y-s), float32(2*s), float32(2*s), 2, playerShotClr, true)
		utils.DrawText(screen, wp.Kind.String(), x-s, y+s+2, color.White)
	}

	for _, e := range snap.Enemies {
		drawEnemy(screen, vp, e)
	}

	for _, b := range snap.Projectiles {
		x, y := vp.WorldToScreen(b.X, b.Y)
		clr := playerShotClr
		if b.Owner == types.OwnerEnemy {
			clr = enemyShotClr
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), 0.5*scale, clr, true)
	}

	drawPlayer(screen, vp, snap, beamYOffset)

	for _, n := range snap.DamageNumbers {
		x, y := vp.WorldToScreen(n.X, n.Y)
		clr := color.RGBA{R: 255, G: 255, B: 255, A: uint8(255 * n.Alpha)}
		if n.Beam {
			clr = color.RGBA{R: 255, G: 120, B: 240, A: uint8(255 * n.Alpha)}
		}
		utils.DrawText(screen, fmt.Sprintf("%.0f", n.Amount), x, y, clr)
	}
}

// drawPlayer 绘制玩家、护盾与光束
func drawPlayer(screen *ebiten.Image, vp utils.Viewport, snap scenes.Snapshot, beamYOffset float64) {
	p := snap.Player
	if !p.Alive {
		return
	}
	scale := float32(vp.Scale())
	x, y := vp.WorldToScreen(p.X, p.Y)
	// 燃料耗尽时的抖动
	if p.Shake > 0 {
		x += math.Sin(snap.Elapsed*60) * p.Shake * float64(scale)
	}

	if p.BeamActive {
		_, by := vp.WorldToScreen(p.X, p.Y+beamYOffset)
		vector.StrokeLine(screen, float32(x), float32(by), float32(vp.Width), float32(by), 0.8*scale, beamColor, true)
	}

	vector.DrawFilledRect(screen, float32(x)-1.5*scale, float32(y)-1.5*scale, 3*scale, 3*scale, playerColor, true)
	if p.Shielded {
		vector.StrokeCircle(screen, float32(x), float32(y), 3*scale, 2, shieldColor, true)
	}
}

// drawEnemy 按种类绘制敌人形状与血条
func drawEnemy(screen *ebiten.Image, vp utils.Viewport, e scenes.EnemyView) {
	scale := vp.Scale()
	cx, cy := vp.WorldToScreen(e.X, e.Y)
	r := e.Size * scale
	clr := enemyColors[e.Kind]

	switch e.Kind {
	case types.EnemySquare:
		vector.DrawFilledRect(screen, float32(cx-r), float32(cy-r), float32(2*r), float32(2*r), clr, true)
	case types.EnemyCircle:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), clr, true)
	case types.EnemyTriangle:
		// 尖端朝左，指向前进方向
		strokePolygon(screen, cx, cy, r, 3, math.Pi, clr)
	default:
		strokePolygon(screen, cx, cy, r, 5, math.Pi, clr)
	}

	if e.HealthFraction < 1 {
		w := float32(2 * r)
		x, y := float32(cx-r), float32(cy-r)-4
		vector.DrawFilledRect(screen, x, y, w, 3, healthBarBack, false)
		vector.DrawFilledRect(screen, x, y, w*float32(e.HealthFraction), 3, healthBarFront, false)
	}
}

// strokePolygon 绘制正多边形轮廓
func strokePolygon(screen *ebiten.Image, cx, cy, r float64, sides int, rotation float64, clr color.Color) {
	for i := 0; i < sides; i++ {
		a0 := rotation + 2*math.Pi*float64(i)/float64(sides)
		a1 := rotation + 2*math.Pi*float64(i+1)/float64(sides)
		vector.StrokeLine(screen,
			float32(cx+r*math.Cos(a0)), float32(cy+r*math.Sin(a0)),
			float32(cx+r*math.Cos(a1)), float32(cy+r*math.Sin(a1)),
			2, clr, true)
	}
}
