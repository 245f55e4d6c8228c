// headless_sim 无窗口运行战斗模拟
//
// 使用自动驾驶输入推进固定步长的模拟，结束后打印本局统计。
// 用于调参和回归检查，不依赖图形环境。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/scenes"
)

var (
	seconds   = flag.Float64("seconds", 120, "模拟时长（秒）")
	seed      = flag.Int64("seed", 1, "随机种子")
	configDir = flag.String("config", "", "数据表目录（为空时使用内置默认值）")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
)

const frameDelta = 1.0 / 60.0

// report 一局统计
type report struct {
	Score      int
	Kills      int
	Waves      int
	BestCombo  int
	Difficulty float64
	Survival   float64
	GameOver   bool
}

// run 运行一局直到时长用完或游戏结束
func run(cfg *config.GameConfig, seed int64, seconds float64) report {
	battle := scenes.NewBattleScene(cfg, seed)
	pilot := &Autopilot{}

	frames := int(math.Round(seconds / frameDelta))
	for i := 0; i < frames && !battle.IsGameOver(); i++ {
		battle.Update(frameDelta, pilot.Decide(battle.Snapshot()))
	}

	snap := battle.Snapshot()
	return report{
		Score:      snap.Score,
		Kills:      snap.Kills,
		Waves:      snap.Waves,
		BestCombo:  snap.BestCombo,
		Difficulty: snap.Difficulty,
		Survival:   snap.Elapsed,
		GameOver:   snap.GameOver,
	}
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configDir != "" {
		loaded, err := config.LoadGameConfig(*configDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	r := run(cfg, *seed, *seconds)

	fmt.Printf("seed:       %d\n", *seed)
	fmt.Printf("score:      %d\n", r.Score)
	fmt.Printf("kills:      %d\n", r.Kills)
	fmt.Printf("waves:      %d\n", r.Waves)
	fmt.Printf("best combo: x%d\n", r.BestCombo)
	fmt.Printf("difficulty: %.2f\n", r.Difficulty)
	fmt.Printf("survival:   %.1fs\n", r.Survival)
	if r.GameOver {
		fmt.Println("result:     player destroyed")
	} else {
		fmt.Println("result:     time limit reached")
	}
}
