package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WorldConfig 全局时钟与视口配置
type WorldConfig struct {
	Difficulty DifficultyConfig `yaml:"difficulty"`
	DayNight   DayNightConfig   `yaml:"dayNight"`
	Biome      BiomeConfig      `yaml:"biome"`
	Viewport   ViewportConfig   `yaml:"viewport"`
}

// DifficultyConfig 难度递增参数
type DifficultyConfig struct {
	Initial  float64 `yaml:"initial"`
	Step     float64 `yaml:"step"`
	Interval float64 `yaml:"interval"`
}

// DayNightConfig 昼夜循环参数
type DayNightConfig struct {
	CycleDuration   float64 `yaml:"cycleDuration"`
	TransitionSpeed float64 `yaml:"transitionSpeed"`
}

// BiomeConfig 生物群系轮换参数
type BiomeConfig struct {
	Count    int     `yaml:"count"`
	Interval float64 `yaml:"interval"`
}

// ViewportConfig 世界视口尺寸（世界单位）
type ViewportConfig struct {
	Height float64 `yaml:"height"`
	Aspect float64 `yaml:"aspect"`
}

// LoadWorldConfig 从 YAML 文件加载世界配置
func LoadWorldConfig(filePath string) (*WorldConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config file %s: %w", filePath, err)
	}

	var config WorldConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse world config YAML from %s: %w", filePath, err)
	}

	if err := validateWorldConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid world config in %s: %w", filePath, err)
	}

	return &config, nil
}

// validateWorldConfig 验证世界配置
func validateWorldConfig(config *WorldConfig) error {
	if config.Difficulty.Initial < 1 {
		return fmt.Errorf("difficulty.initial must be at least 1, got %v", config.Difficulty.Initial)
	}
	if config.Difficulty.Step <= 0 || config.Difficulty.Interval <= 0 {
		return fmt.Errorf("difficulty.step and difficulty.interval must be positive")
	}
	if config.DayNight.CycleDuration <= 0 {
		return fmt.Errorf("dayNight.cycleDuration must be positive, got %v", config.DayNight.CycleDuration)
	}
	if config.Biome.Count < 1 || config.Biome.Interval <= 0 {
		return fmt.Errorf("biome.count must be at least 1 and biome.interval positive")
	}
	if config.Viewport.Height <= 0 || config.Viewport.Aspect <= 0 {
		return fmt.Errorf("viewport height and aspect must be positive")
	}
	return nil
}
