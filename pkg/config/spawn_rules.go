package config

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// SpawnRulesConfig 出怪规则配置
type SpawnRulesConfig struct {
	BaseInterval          float64              `yaml:"baseInterval"`          // 难度 1 时的出怪间隔（秒）
	IntervalDecay         float64              `yaml:"intervalDecay"`         // 间隔 = baseInterval * decay^(难度-1)
	BaseWaveSize          int                  `yaml:"baseWaveSize"`          // 基础波次规模
	WaveSizePerDifficulty float64              `yaml:"waveSizePerDifficulty"` // 每点难度增加的规模
	MaxWaveSize           int                  `yaml:"maxWaveSize"`           // 波次规模上限
	Patterns              PatternWeightsConfig `yaml:"patterns"`              // 出怪模式权重
	Solo                  SoloSpawnConfig      `yaml:"solo"`
	Formation             FormationSpawnConfig `yaml:"formation"`
	Swarm                 SwarmSpawnConfig     `yaml:"swarm"`
}

// PatternWeight 随难度变化的出怪模式权重
// weight = Base + clamp(Slope * 难度, -Cap, Cap)
type PatternWeight struct {
	Base  float64 `yaml:"base"`
	Slope float64 `yaml:"slope"`
	Cap   float64 `yaml:"cap"`
}

// PatternWeightsConfig 三种出怪模式的权重
type PatternWeightsConfig struct {
	Solo      PatternWeight `yaml:"solo"`
	Formation PatternWeight `yaml:"formation"`
	Swarm     PatternWeight `yaml:"swarm"`
}

// SoloSpawnConfig 单体出怪布局
type SoloSpawnConfig struct {
	XOffset float64 `yaml:"xOffset"` // 距视口右边缘的距离
	YSpread float64 `yaml:"ySpread"` // 垂直随机范围占半高的比例
}

// FormationSpawnConfig 编队出怪布局
type FormationSpawnConfig struct {
	XOffset     float64 `yaml:"xOffset"`
	YSpread     float64 `yaml:"ySpread"`
	VSpacing    float64 `yaml:"vSpacing"`    // V 字形成员垂直间距
	VSlope      float64 `yaml:"vSlope"`      // V 字形 x 偏移 = |垂直偏移| * vSlope
	SineSpacing float64 `yaml:"sineSpacing"` // 正弦编队成员水平间距
}

// SwarmSpawnConfig 蜂群出怪布局
type SwarmSpawnConfig struct {
	ExtraMembers   int     `yaml:"extraMembers"` // 蜂群额外成员数
	XOffset        float64 `yaml:"xOffset"`
	YSpread        float64 `yaml:"ySpread"`
	Radius         float64 `yaml:"radius"`         // 成员围绕中心的随机范围
	TriangleChance float64 `yaml:"triangleChance"` // 三角形概率，否则为正方形
}

// LoadSpawnRules 从 YAML 文件加载出怪规则配置
func LoadSpawnRules(filePath string) (*SpawnRulesConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn rules file: %w", err)
	}

	var config SpawnRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spawn rules YAML: %w", err)
	}

	if err := validateSpawnRules(&config); err != nil {
		return nil, fmt.Errorf("invalid spawn rules config: %w", err)
	}

	return &config, nil
}

// validateSpawnRules 验证配置的有效性
func validateSpawnRules(config *SpawnRulesConfig) error {
	if config.BaseInterval <= 0 {
		return fmt.Errorf("baseInterval must be positive, got %v", config.BaseInterval)
	}

	// 间隔必须随难度严格递减
	if config.IntervalDecay <= 0 || config.IntervalDecay >= 1 {
		return fmt.Errorf("intervalDecay must be within (0, 1), got %v", config.IntervalDecay)
	}

	if config.BaseWaveSize < 1 {
		return fmt.Errorf("baseWaveSize must be at least 1, got %d", config.BaseWaveSize)
	}

	if config.MaxWaveSize < config.BaseWaveSize {
		return fmt.Errorf("maxWaveSize (%d) cannot be less than baseWaveSize (%d)", config.MaxWaveSize, config.BaseWaveSize)
	}

	if config.WaveSizePerDifficulty < 0 {
		return fmt.Errorf("waveSizePerDifficulty cannot be negative, got %v", config.WaveSizePerDifficulty)
	}

	for name, w := range map[string]PatternWeight{
		"solo":      config.Patterns.Solo,
		"formation": config.Patterns.Formation,
		"swarm":     config.Patterns.Swarm,
	} {
		if w.Cap < 0 {
			return fmt.Errorf("patterns.%s: cap cannot be negative, got %v", name, w.Cap)
		}
	}

	if config.Swarm.TriangleChance < 0 || config.Swarm.TriangleChance > 1 {
		return fmt.Errorf("swarm.triangleChance must be within [0, 1], got %v", config.Swarm.TriangleChance)
	}

	if config.Swarm.ExtraMembers < 0 {
		return fmt.Errorf("swarm.extraMembers cannot be negative, got %d", config.Swarm.ExtraMembers)
	}

	return nil
}

// At 返回指定难度下的权重（不小于 0）
func (w PatternWeight) At(difficulty float64) float64 {
	delta := math.Max(-w.Cap, math.Min(w.Cap, w.Slope*difficulty))
	return math.Max(0, w.Base+delta)
}

// SpawnInterval 返回指定难度下的出怪间隔
// 公式: baseInterval * intervalDecay^(difficulty-1)
func (c *SpawnRulesConfig) SpawnInterval(difficulty float64) float64 {
	return c.BaseInterval * math.Pow(c.IntervalDecay, difficulty-1)
}

// WaveSize 返回指定难度下的波次规模
// 公式: min(maxWaveSize, floor(baseWaveSize + difficulty * waveSizePerDifficulty))
func (c *SpawnRulesConfig) WaveSize(difficulty float64) int {
	size := int(math.Floor(float64(c.BaseWaveSize) + difficulty*c.WaveSizePerDifficulty))
	if size > c.MaxWaveSize {
		return c.MaxWaveSize
	}
	if size < 1 {
		return 1
	}
	return size
}
