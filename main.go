package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/jetstrike/pkg/app"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/embedded"
)

var (
	verbose   = flag.Bool("verbose", false, "详细日志")
	configDir = flag.String("config", config.DefaultDataDir, "数据表目录（默认使用嵌入数据表）")
	seed      = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	cfg, err := config.LoadGameConfig(*configDir)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	game := app.NewApp(app.Config{
		Verbose: *verbose,
		Seed:    runSeed,
		Game:    cfg,
		Storage: app.OpenStorage(),
	})

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Jetstrike")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&exitSaver{App: game}); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

// exitSaver 在窗口关闭时保存纪录后退出
type exitSaver struct {
	*app.App
}

func (g *exitSaver) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.GetSceneManager().SaveOnExit()
		return ebiten.Termination
	}
	return g.App.Update()
}
