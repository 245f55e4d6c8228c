package systems

import (
	"log"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
)

// DifficultyEngine 难度与环境时钟
// 负责难度的周期递增、昼夜循环和生物群系轮换，为出怪与敌人行为提供数据
type DifficultyEngine struct {
	cfg *config.WorldConfig

	difficulty  components.DifficultyComponent
	environment components.EnvironmentComponent
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(cfg *config.WorldConfig) *DifficultyEngine {
	d := &DifficultyEngine{cfg: cfg}
	d.Reset()
	return d
}

// Reset 恢复到开局状态：难度为初始值、白天、第一个生物群系
func (d *DifficultyEngine) Reset() {
	d.difficulty = components.DifficultyComponent{
		Level:    d.cfg.Difficulty.Initial,
		Step:     d.cfg.Difficulty.Step,
		Interval: d.cfg.Difficulty.Interval,
	}
	d.environment = components.EnvironmentComponent{
		CycleDuration:   d.cfg.DayNight.CycleDuration,
		TransitionSpeed: d.cfg.DayNight.TransitionSpeed,
		BiomeCount:      d.cfg.Biome.Count,
		BiomeInterval:   d.cfg.Biome.Interval,
	}
}

// Update 推进环境时钟与难度
func (d *DifficultyEngine) Update(dt float64) {
	d.updateEnvironment(dt)
	d.updateDifficulty(dt)
}

// updateEnvironment 昼夜循环与生物群系轮换
//
// 每个周期结束时开始过渡，过渡进度从 0.01 开始按 TransitionSpeed 增加，
// 达到 1 时切换昼夜
func (d *DifficultyEngine) updateEnvironment(dt float64) {
	env := &d.environment

	env.CycleTimer += dt
	if env.CycleTimer >= env.CycleDuration && !env.Transitioning {
		env.CycleTimer = 0
		env.Transitioning = true
		env.TransitionProgress = 0.01
	}
	if env.Transitioning {
		env.TransitionProgress += dt * env.TransitionSpeed
		if env.TransitionProgress >= 1 {
			env.TransitionProgress = 0
			env.Transitioning = false
			env.IsNight = !env.IsNight
			log.Printf("[DifficultyEngine] night=%v", env.IsNight)
		}
	}

	env.BiomeTimer += dt
	if env.BiomeTimer >= env.BiomeInterval {
		env.BiomeTimer = 0
		env.Biome = (env.Biome + 1) % env.BiomeCount
		log.Printf("[DifficultyEngine] biome -> %d", env.Biome)
	}
}

// updateDifficulty 每 Interval 秒难度增加 Step
func (d *DifficultyEngine) updateDifficulty(dt float64) {
	diff := &d.difficulty
	diff.Elapsed += dt
	diff.Timer += dt
	if diff.Timer >= diff.Interval {
		diff.Timer = 0
		diff.Level += diff.Step
		log.Printf("[DifficultyEngine] difficulty -> %.2f", diff.Level)
	}
}

// Level 当前难度
func (d *DifficultyEngine) Level() float64 {
	return d.difficulty.Level
}

// Elapsed 本局累计时间
func (d *DifficultyEngine) Elapsed() float64 {
	return d.difficulty.Elapsed
}

// IsNight 是否夜间
func (d *DifficultyEngine) IsNight() bool {
	return d.environment.IsNight
}

// Environment 返回环境时钟状态的副本
func (d *DifficultyEngine) Environment() components.EnvironmentComponent {
	return d.environment
}
