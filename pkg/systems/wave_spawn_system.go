package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 按难度计算出怪间隔，计时到达后生成一波
//   - 按难度加权选择出怪模式（单体、编队、蜂群）
//   - 按种类权重选择敌人种类
//   - 在视口右侧按模式布局生成敌人
type WaveSpawnSystem struct {
	world *entities.World
	rules *config.SpawnRulesConfig
	stats *config.EnemyStatsConfig
	rng   *rand.Rand

	timer components.WaveTimerComponent

	kindWeights []float64
}

// NewWaveSpawnSystem 创建波次生成系统
//
// 参数:
//   - world: 实体集合（提供视口与敌人集合）
//   - rules: 出怪规则
//   - stats: 敌人属性（种类权重与生成属性）
//   - rng: 随机源
func NewWaveSpawnSystem(world *entities.World, rules *config.SpawnRulesConfig, stats *config.EnemyStatsConfig, rng *rand.Rand) *WaveSpawnSystem {
	s := &WaveSpawnSystem{
		world: world,
		rules: rules,
		stats: stats,
		rng:   rng,
	}
	for _, kind := range types.AllEnemyKinds {
		s.kindWeights = append(s.kindWeights, stats.GetEnemyWeight(kind))
	}
	return s
}

// Update 推进出怪计时
//
// 参数:
//   - dt: 本帧时长
//   - difficulty: 当前难度
//   - night: 是否夜间（夜间敌人加速）
//
// 返回:
//   - int: 本帧生成的敌人数量
func (s *WaveSpawnSystem) Update(dt, difficulty float64, night bool) int {
	s.timer.Timer += dt
	interval := s.rules.SpawnInterval(difficulty)
	s.timer.LastInterval = interval
	if s.timer.Timer < interval {
		return 0
	}
	s.timer.Timer = 0
	return s.SpawnWave(difficulty, night)
}

// SpawnWave 立即生成一波敌人
func (s *WaveSpawnSystem) SpawnWave(difficulty float64, night bool) int {
	behavior := s.SelectPattern(difficulty)
	size := s.rules.WaveSize(difficulty)

	var spawns []entities.EnemySpawn
	switch behavior {
	case types.BehaviorFormation:
		spawns = s.layoutFormation(size)
	case types.BehaviorSwarm:
		spawns = s.layoutSwarm(size + s.rules.Swarm.ExtraMembers)
	default:
		spawns = s.layoutSolo(size)
	}

	for _, sp := range spawns {
		sp.Behavior = behavior
		sp.Difficulty = difficulty
		sp.Night = night
		s.world.Enemies.Create(entities.NewEnemy(s.stats, sp))
	}

	s.timer.WavesSpawned++
	s.timer.EnemiesSpawned += len(spawns)
	log.Printf("[WaveSpawnSystem] wave %d: %s x%d (difficulty %.2f, night=%v)",
		s.timer.WavesSpawned, behavior, len(spawns), difficulty, night)
	return len(spawns)
}

// SelectPattern 按难度加权选择出怪模式，权重全部为 0 时使用单体
func (s *WaveSpawnSystem) SelectPattern(difficulty float64) types.BehaviorType {
	p := s.rules.Patterns
	weights := []float64{
		types.BehaviorSolo:      p.Solo.At(difficulty),
		types.BehaviorFormation: p.Formation.At(difficulty),
		types.BehaviorSwarm:     p.Swarm.At(difficulty),
	}
	if i, ok := weightedIndex(s.rng, weights); ok {
		return types.BehaviorType(i)
	}
	return types.BehaviorSolo
}

// SelectEnemyKind 按种类权重选择敌人，未命中时使用三角形
func (s *WaveSpawnSystem) SelectEnemyKind() types.EnemyKind {
	if i, ok := weightedIndex(s.rng, s.kindWeights); ok {
		return types.AllEnemyKinds[i]
	}
	return types.EnemyTriangle
}

// layoutSolo 单体：右边缘外一列，每个成员独立选择种类
func (s *WaveSpawnSystem) layoutSolo(n int) []entities.EnemySpawn {
	cam := s.world.Camera
	cfg := s.rules.Solo
	spawns := make([]entities.EnemySpawn, 0, n)
	for i := 0; i < n; i++ {
		spawns = append(spawns, entities.EnemySpawn{
			Kind: s.SelectEnemyKind(),
			X:    cam.Right + cfg.XOffset,
			Y:    entities.CenterY(cam) + signedUnit(s.rng)*entities.HalfHeight(cam)*cfg.YSpread,
		})
	}
	return spawns
}

// layoutFormation 编队：全队同一种类，V 字形或正弦形各占一半
func (s *WaveSpawnSystem) layoutFormation(n int) []entities.EnemySpawn {
	cam := s.world.Camera
	cfg := s.rules.Formation
	kind := s.SelectEnemyKind()

	shape := types.FormationV
	if s.rng.Float64() < 0.5 {
		shape = types.FormationSine
	}

	startX := cam.Right + cfg.XOffset
	startY := entities.CenterY(cam) + signedUnit(s.rng)*entities.HalfHeight(cam)*cfg.YSpread

	spawns := make([]entities.EnemySpawn, 0, n)
	for i := 0; i < n; i++ {
		sp := entities.EnemySpawn{
			Kind:      kind,
			Formation: entities.FormationSlot{Shape: shape, Index: i, BaseY: startY},
		}
		if shape == types.FormationV {
			offset := (float64(i) - float64(n-1)/2) * cfg.VSpacing
			sp.X = startX + math.Abs(offset)*cfg.VSlope
			sp.Y = startY + offset
		} else {
			sp.X = startX + float64(i)*cfg.SineSpacing
			sp.Y = startY
		}
		spawns = append(spawns, sp)
	}
	return spawns
}

// layoutSwarm 蜂群：围绕中心随机散布，全群同为三角形或正方形
func (s *WaveSpawnSystem) layoutSwarm(n int) []entities.EnemySpawn {
	cam := s.world.Camera
	cfg := s.rules.Swarm

	kind := types.EnemySquare
	if s.rng.Float64() < cfg.TriangleChance {
		kind = types.EnemyTriangle
	}

	cx := cam.Right + cfg.XOffset
	cy := entities.CenterY(cam) + signedUnit(s.rng)*entities.HalfHeight(cam)*cfg.YSpread

	spawns := make([]entities.EnemySpawn, 0, n)
	for i := 0; i < n; i++ {
		spawns = append(spawns, entities.EnemySpawn{
			Kind: kind,
			X:    cx + signedUnit(s.rng)*cfg.Radius,
			Y:    cy + signedUnit(s.rng)*cfg.Radius,
		})
	}
	return spawns
}

// Reset 新开一局时清空计时与统计
func (s *WaveSpawnSystem) Reset() {
	s.timer = components.WaveTimerComponent{}
}

// WavesSpawned 本局已生成的波次数
func (s *WaveSpawnSystem) WavesSpawned() int {
	return s.timer.WavesSpawned
}

// EnemiesSpawned 本局已生成的敌人总数
func (s *WaveSpawnSystem) EnemiesSpawned() int {
	return s.timer.EnemiesSpawned
}

// Timer 距上一波的时间
func (s *WaveSpawnSystem) Timer() float64 {
	return s.timer.Timer
}
