package config

import (
	"fmt"

	"github.com/decker502/jetstrike/pkg/types"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人种类的属性配置
type EnemyStats struct {
	Health        float64 `yaml:"health"`        // 基础血量
	Size          float64 `yaml:"size"`          // 碰撞半径
	SpeedFactor   float64 `yaml:"speedFactor"`   // 相对基础速度的倍率
	Damage        float64 `yaml:"damage"`        // 接触伤害
	Points        int     `yaml:"points"`        // 击杀分值
	Weight        float64 `yaml:"weight"`        // 权重，用于随机选择敌人种类
	SplitsOnDeath bool    `yaml:"splitsOnDeath"` // 死亡时分裂
	Shoots        bool    `yaml:"shoots"`        // 会射击
}

// BehaviorModifiers 出怪模式对属性的修正
type BehaviorModifiers struct {
	SpeedMultiplier  float64 `yaml:"speedMultiplier"`
	SizeMultiplier   float64 `yaml:"sizeMultiplier"`
	HealthMultiplier float64 `yaml:"healthMultiplier"`
}

// MovementConfig 各行为的移动参数
type MovementConfig struct {
	SoloVerticalDamping  float64 `yaml:"soloVerticalDamping"`  // 单体垂直速度比例
	FormationSpeedFactor float64 `yaml:"formationSpeedFactor"` // 编队水平速度比例
	SineAmplitude        float64 `yaml:"sineAmplitude"`
	SineFrequency        float64 `yaml:"sineFrequency"`
	SineGain             float64 `yaml:"sineGain"` // 比例控制系数
	SwarmRedrawChance    float64 `yaml:"swarmRedrawChance"`
	SwarmVerticalDecay   float64 `yaml:"swarmVerticalDecay"`
	SwarmMinSpeedFactor  float64 `yaml:"swarmMinSpeedFactor"`   // 向左速度低于此比例时触发下限
	SwarmFloorFactor     float64 `yaml:"swarmFloorSpeedFactor"` // 触发后的向左速度比例
}

// SplitConfig 分裂参数
type SplitConfig struct {
	MinSize      float64 `yaml:"minSize"` // 尺寸必须大于该值才分裂
	MinChildren  int     `yaml:"minChildren"`
	MaxChildren  int     `yaml:"maxChildren"`
	SizeFactor   float64 `yaml:"sizeFactor"`
	HealthFactor float64 `yaml:"healthFactor"`
	SpeedFactor  float64 `yaml:"speedFactor"`
	Radius       float64 `yaml:"radius"` // 子体环绕半径
}

// ShooterConfig 射击参数
type ShooterConfig struct {
	BaseCooldown     float64 `yaml:"baseCooldown"` // 冷却 = BaseCooldown / 难度
	ProjectileSpeed  float64 `yaml:"projectileSpeed"`
	ProjectileDamage float64 `yaml:"projectileDamage"`
}

// EnemyStatsConfig 敌人属性配置文件结构
type EnemyStatsConfig struct {
	BaseSpeed            float64                      `yaml:"baseSpeed"`
	SpeedPerDifficulty   float64                      `yaml:"speedPerDifficulty"`
	NightSpeedMultiplier float64                      `yaml:"nightSpeedMultiplier"`
	Enemies              map[string]EnemyStats        `yaml:"enemies"`   // 敌人种类到属性的映射
	Behaviors            map[string]BehaviorModifiers `yaml:"behaviors"` // 出怪模式到修正的映射
	Movement             MovementConfig               `yaml:"movement"`
	Split                SplitConfig                  `yaml:"split"`
	Shooter              ShooterConfig                `yaml:"shooter"`
}

// LoadEnemyStats 从 YAML 文件加载敌人属性配置
// 参数：
//
//	filepath - 配置文件路径（嵌入路径 data/... 或本地路径）
//
// 返回：
//
//	*EnemyStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := readConfigFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}

	var config EnemyStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML from %s: %w", filepath, err)
	}

	if err := validateEnemyStats(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy stats in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateEnemyStats 验证敌人属性配置的完整性和合法性
func validateEnemyStats(config *EnemyStatsConfig) error {
	if config.BaseSpeed <= 0 {
		return fmt.Errorf("baseSpeed must be positive, got %v", config.BaseSpeed)
	}

	for _, kind := range types.AllEnemyKinds {
		stats, ok := config.Enemies[kind.String()]
		if !ok {
			return fmt.Errorf("enemy %s: missing stats", kind)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %v", kind, stats.Health)
		}
		if stats.Size <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %v", kind, stats.Size)
		}
		if stats.Weight < 0 {
			return fmt.Errorf("enemy %s: weight cannot be negative, got %v", kind, stats.Weight)
		}
		if stats.Damage < 0 || stats.Points < 0 {
			return fmt.Errorf("enemy %s: damage and points cannot be negative", kind)
		}
	}

	for name := range config.Enemies {
		if _, ok := types.EnemyKindFromString(name); !ok {
			return fmt.Errorf("unknown enemy kind %q", name)
		}
	}

	for name, mod := range config.Behaviors {
		if _, ok := types.BehaviorFromString(name); !ok {
			return fmt.Errorf("unknown behavior %q", name)
		}
		if mod.SpeedMultiplier < 0 || mod.SizeMultiplier < 0 || mod.HealthMultiplier < 0 {
			return fmt.Errorf("behavior %s: multipliers cannot be negative", name)
		}
	}

	if config.Split.MinChildren < 1 || config.Split.MaxChildren < config.Split.MinChildren {
		return fmt.Errorf("split: invalid children range [%d, %d]", config.Split.MinChildren, config.Split.MaxChildren)
	}

	if config.Shooter.BaseCooldown <= 0 {
		return fmt.Errorf("shooter: baseCooldown must be positive, got %v", config.Shooter.BaseCooldown)
	}

	if config.Movement.SwarmRedrawChance < 0 || config.Movement.SwarmRedrawChance > 1 {
		return fmt.Errorf("movement: swarmRedrawChance must be within [0, 1], got %v", config.Movement.SwarmRedrawChance)
	}

	return nil
}

// GetEnemyStats 获取指定敌人种类的属性
// 如果种类不存在，返回零值和 false
func (c *EnemyStatsConfig) GetEnemyStats(kind types.EnemyKind) (EnemyStats, bool) {
	stats, ok := c.Enemies[kind.String()]
	return stats, ok
}

// GetEnemyWeight 获取指定敌人种类的权重
// 如果种类不存在，返回默认权重 0
func (c *EnemyStatsConfig) GetEnemyWeight(kind types.EnemyKind) float64 {
	if stats, ok := c.Enemies[kind.String()]; ok {
		return stats.Weight
	}
	return 0
}

// GetBehaviorModifiers 获取出怪模式修正，未配置时返回全 1 修正
func (c *EnemyStatsConfig) GetBehaviorModifiers(behavior types.BehaviorType) BehaviorModifiers {
	mod, ok := c.Behaviors[behavior.String()]
	if !ok {
		return BehaviorModifiers{SpeedMultiplier: 1, SizeMultiplier: 1, HealthMultiplier: 1}
	}
	// 未填写的倍率视为 1
	if mod.SpeedMultiplier == 0 {
		mod.SpeedMultiplier = 1
	}
	if mod.SizeMultiplier == 0 {
		mod.SizeMultiplier = 1
	}
	if mod.HealthMultiplier == 0 {
		mod.HealthMultiplier = 1
	}
	return mod
}

// SpeedAt 返回指定难度下的敌人基础速度
func (c *EnemyStatsConfig) SpeedAt(difficulty float64) float64 {
	return c.BaseSpeed + difficulty*c.SpeedPerDifficulty
}
