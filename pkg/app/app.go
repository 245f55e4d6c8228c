// Package app 提供游戏应用的核心包装器
//
// 该包把 ebiten 宿主循环与核心模拟隔开：模拟包不依赖 ebiten，
// 键盘输入、绘制、窗口和纪录持久化都在这里接入。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/game"
)

// 默认窗口尺寸
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// AppName gdata 存储使用的应用名
const AppName = "jetstrike"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子
	Seed int64
	// Game 已加载并校验的数据表
	Game *config.GameConfig
	// Storage 纪录存储，为 nil 时不保存纪录
	Storage *gdata.Manager
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *SceneManager
	battle       *BattleView
	verbose      bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) *App {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	records := game.NewRecordManager(cfg.Storage)
	battle := NewBattleView(cfg.Game, cfg.Seed, records)
	battle.Resize(WindowWidth, WindowHeight)

	sceneManager := NewSceneManager()
	sceneManager.SwitchTo(battle)
	log.Printf("[App] Started with seed %d", cfg.Seed)

	return &App{
		sceneManager: sceneManager,
		battle:       battle,
		verbose:      cfg.Verbose,
	}
}

// OpenStorage 打开 gdata 存储
// 失败时返回 nil，游戏在无持久化模式下运行
func OpenStorage() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (records will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 退出全屏后等待窗口管理器处理几帧再恢复窗口尺寸
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时以黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸跟随窗口，视口按宽高比重新计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.battle.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存纪录
func (a *App) GetSceneManager() *SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
