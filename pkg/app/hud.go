package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/jetstrike/pkg/game"
	"github.com/decker502/jetstrike/pkg/scenes"
	"github.com/decker502/jetstrike/pkg/types"
	"github.com/decker502/jetstrike/pkg/utils"
)

var (
	hudText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudDim      = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	fuelColor   = color.RGBA{R: 250, G: 160, B: 40, A: 255}
	heatColor   = color.RGBA{R: 255, G: 70, B: 40, A: 255}
	chargeColor = color.RGBA{R: 240, G: 90, B: 240, A: 255}
)

// weaponStatus 当前武器资源的文字描述
func weaponStatus(w scenes.WeaponView) string {
	switch w.Kind {
	case types.WeaponBeam:
		status := fmt.Sprintf("BEAM %3.0f/%3.0f", w.Charge, w.MaxCharge)
		if w.Overheated {
			status += " OVERHEAT"
		}
		return status
	default:
		if w.Unlimited {
			return fmt.Sprintf("%s  INF", w.Kind)
		}
		return fmt.Sprintf("%s  %d/%d", w.Kind, w.Ammo, w.MaxAmmo)
	}
}

// hudLines HUD 左上角的文字行
func hudLines(snap scenes.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("SCORE %d   KILLS %d", snap.Score, snap.Kills),
		fmt.Sprintf("HP %.0f/%.0f", snap.Player.Health, snap.Player.MaxHealth),
		weaponStatus(snap.Weapon),
		fmt.Sprintf("WAVE %d   DIFF %.1f   %s", snap.Waves, snap.Difficulty, dayNightLabel(snap.Night)),
	}
	if snap.Combo > 1 {
		lines = append(lines, fmt.Sprintf("COMBO x%d", snap.Combo))
	}
	return lines
}

func dayNightLabel(night bool) string {
	if night {
		return "NIGHT"
	}
	return "DAY"
}

// drawBar 绘制带背景的进度条
func drawBar(screen *ebiten.Image, x, y, w, h, fraction float32, clr color.Color) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	vector.DrawFilledRect(screen, x, y, w, h, hudDim, false)
	vector.DrawFilledRect(screen, x, y, w*fraction, h, clr, false)
}

// drawHUD 绘制分数、资源条和提示
func drawHUD(screen *ebiten.Image, snap scenes.Snapshot, records *game.PlayerRecords, newBest bool) {
	for i, line := range hudLines(snap) {
		utils.DrawText(screen, line, 10, 10+float64(i)*16, hudText)
	}

	y := float32(10 + 16*len(hudLines(snap)) + 4)
	if snap.Player.MaxFuel > 0 {
		drawBar(screen, 10, y, 120, 6, float32(snap.Player.Fuel/snap.Player.MaxFuel), fuelColor)
		y += 10
	}
	if snap.Weapon.Kind == types.WeaponBeam {
		if snap.Weapon.MaxCharge > 0 {
			drawBar(screen, 10, y, 120, 6, float32(snap.Weapon.Charge/snap.Weapon.MaxCharge), chargeColor)
			y += 10
		}
		if snap.Weapon.MaxHeat > 0 {
			drawBar(screen, 10, y, 120, 6, float32(snap.Weapon.Heat/snap.Weapon.MaxHeat), heatColor)
		}
	}

	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	if snap.PickupPrompt {
		utils.DrawTextCentered(screen, []string{"PRESS E TO PICK UP"}, cx, float64(bounds.Dy())-40, hudText)
	}

	if snap.Paused {
		utils.DrawTextCentered(screen, []string{"PAUSED"}, cx, float64(bounds.Dy())/2, hudText)
	}

	if snap.GameOver {
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), hudDim, false)
		lines := []string{"GAME OVER", fmt.Sprintf("SCORE %d", snap.Score)}
		if newBest {
			lines = append(lines, "NEW BEST!")
		}
		if records != nil {
			lines = append(lines, utils.WrapText(fmt.Sprintf(
				"BEST %d  BEST COMBO x%d  LONGEST %.0fs  RUNS %d",
				records.BestScore, records.BestCombo, records.LongestSurvival, records.RunsPlayed),
				utils.DefaultFace, float64(bounds.Dx())*0.8)...)
		}
		lines = append(lines, "PRESS R TO RESTART")
		utils.DrawTextCentered(screen, lines, cx, float64(bounds.Dy())/3, hudText)
	}
}
