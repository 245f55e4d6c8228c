package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/game"
	"github.com/decker502/jetstrike/pkg/scenes"
	"github.com/decker502/jetstrike/pkg/utils"
)

// BattleView 把战斗模拟接入宿主循环
//
// 负责：
//   - 每帧读取键盘生成输入意图
//   - P 切换暂停，游戏结束后 R 重新开始
//   - 游戏结束时提交并保存个人纪录
//   - 绘制世界与 HUD
type BattleView struct {
	battle  *scenes.BattleScene
	cfg     *config.GameConfig
	records *game.RecordManager
	keys    utils.KeyReader

	screenW, screenH int
	submitted        bool // 本局结果是否已提交
	newBest          bool
}

// NewBattleView 创建战斗视图
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - seed: 随机种子
//   - records: 纪录管理器，可为 nil（不保存纪录）
func NewBattleView(cfg *config.GameConfig, seed int64, records *game.RecordManager) *BattleView {
	v := &BattleView{
		battle:  scenes.NewBattleScene(cfg, seed),
		cfg:     cfg,
		records: records,
		keys:    utils.Keyboard,
	}
	v.battle.OnGameOver(func(finalScore int) {
		log.Printf("[BattleView] game over, final score %d", finalScore)
		v.submitResult()
	})
	return v
}

// Battle 返回底层战斗场景
func (v *BattleView) Battle() *scenes.BattleScene {
	return v.battle
}

// Resize 窗口尺寸变化时重新计算视口
func (v *BattleView) Resize(width, height int) {
	if width == v.screenW && height == v.screenH {
		return
	}
	v.screenW, v.screenH = width, height
	v.battle.SetViewport(utils.CameraForScreen(width, height, v.cfg.World.Viewport.Height))
}

// Update 读取输入并推进模拟
func (v *BattleView) Update(deltaTime float64) {
	if v.keys.JustPressed(ebiten.KeyP) && !v.battle.IsGameOver() {
		v.battle.SetPaused(!v.battle.IsPaused())
	}
	if v.battle.IsGameOver() {
		if v.keys.JustPressed(ebiten.KeyR) {
			v.restart()
		}
		return
	}
	v.battle.Update(deltaTime, utils.ReadIntent(v.keys))
}

// restart 开始新的一局
func (v *BattleView) restart() {
	v.battle.Restart()
	v.submitted = false
	v.newBest = false
	log.Printf("[BattleView] restarted")
}

// submitResult 提交本局结果并保存，每局只提交一次
func (v *BattleView) submitResult() bool {
	if v.submitted || v.records == nil {
		return true
	}
	v.submitted = true
	v.newBest = v.records.Submit(v.battle.Result())
	if err := v.records.Save(); err != nil {
		log.Printf("[BattleView] Warning: failed to save records: %v", err)
		return false
	}
	return true
}

// SaveOnExit 退出时提交当前进度
// 只有打过至少一次分的对局才记入纪录
func (v *BattleView) SaveOnExit() bool {
	if v.battle.State().GetScore() == 0 && !v.battle.IsGameOver() {
		return true
	}
	return v.submitResult()
}

// Draw 绘制世界与 HUD
func (v *BattleView) Draw(screen *ebiten.Image) {
	snap := v.battle.Snapshot()
	vp := utils.Viewport{Camera: snap.Camera, Width: v.screenW, Height: v.screenH}
	drawWorld(screen, vp, snap, v.cfg.Combat.BeamYOffset)

	var records *game.PlayerRecords
	if v.records != nil {
		r := v.records.GetRecords()
		records = &r
	}
	drawHUD(screen, snap, records, v.newBest)
}
