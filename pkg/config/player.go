package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// JetpackLevel 喷气背包单个等级的参数
type JetpackLevel struct {
	MaxFuel     float64 `yaml:"maxFuel"`
	Consumption float64 `yaml:"consumption"`
	Regen       float64 `yaml:"regen"`
	SpeedBonus  float64 `yaml:"speedBonus"`
	Shake       float64 `yaml:"shake"`
	Unlimited   bool    `yaml:"unlimited"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	MaxHealth          float64        `yaml:"maxHealth"`
	StartX             float64        `yaml:"startX"`
	StartY             float64        `yaml:"startY"`
	BaseSpeed          float64        `yaml:"baseSpeed"`
	Friction           float64        `yaml:"friction"`           // 无水平输入时每帧速度保留比例
	Gravity            float64        `yaml:"gravity"`            // 无推进时每秒向下加速度
	SidewaysFuelFactor float64        `yaml:"sidewaysFuelFactor"` // 水平推进燃料消耗比例
	Margin             float64        `yaml:"margin"`             // 距视口边缘的最小距离
	Recoil             float64        `yaml:"recoil"`             // 每次开火尝试的后坐力（乘以 dt）
	DeathDelay         float64        `yaml:"deathDelay"`         // 死亡到游戏结束的延迟（秒）
	Jetpack            []JetpackLevel `yaml:"jetpack"`            // 按等级排列
}

// LoadPlayerConfig 从 YAML 文件加载玩家配置
func LoadPlayerConfig(filePath string) (*PlayerConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read player config file %s: %w", filePath, err)
	}

	var config PlayerConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse player config YAML from %s: %w", filePath, err)
	}

	if err := validatePlayerConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid player config in %s: %w", filePath, err)
	}

	return &config, nil
}

// validatePlayerConfig 验证玩家配置
func validatePlayerConfig(config *PlayerConfig) error {
	if config.MaxHealth <= 0 {
		return fmt.Errorf("maxHealth must be positive, got %v", config.MaxHealth)
	}
	if config.BaseSpeed <= 0 {
		return fmt.Errorf("baseSpeed must be positive, got %v", config.BaseSpeed)
	}
	if config.Friction < 0 || config.Friction > 1 {
		return fmt.Errorf("friction must be within [0, 1], got %v", config.Friction)
	}
	if config.DeathDelay < 0 {
		return fmt.Errorf("deathDelay cannot be negative, got %v", config.DeathDelay)
	}
	if len(config.Jetpack) == 0 {
		return fmt.Errorf("at least one jetpack level is required")
	}
	for i, level := range config.Jetpack {
		if !level.Unlimited && level.MaxFuel <= 0 {
			return fmt.Errorf("jetpack level %d: maxFuel must be positive, got %v", i, level.MaxFuel)
		}
		if level.Consumption < 0 || level.Regen < 0 {
			return fmt.Errorf("jetpack level %d: consumption and regen cannot be negative", i)
		}
	}
	return nil
}

// JetpackLevelAt 返回指定等级的参数，超出范围时取最高等级
func (c *PlayerConfig) JetpackLevelAt(level int) JetpackLevel {
	if level < 0 {
		level = 0
	}
	if level >= len(c.Jetpack) {
		level = len(c.Jetpack) - 1
	}
	return c.Jetpack[level]
}

// MaxJetpackLevel 最高喷气背包等级
func (c *PlayerConfig) MaxJetpackLevel() int {
	return len(c.Jetpack) - 1
}
