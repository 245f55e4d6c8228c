package config

import (
	"fmt"

	"github.com/decker502/jetstrike/pkg/types"
	"gopkg.in/yaml.v3"
)

// CombatConfig 碰撞与战斗结算参数
type CombatConfig struct {
	ProjectileRadius float64 `yaml:"projectileRadius"` // 玩家子弹碰撞半径
	BeamYOffset      float64 `yaml:"beamYOffset"`      // 光束相对玩家的垂直偏移
	BeamTickFraction float64 `yaml:"beamTickFraction"` // 光束每帧伤害占名义伤害的比例
	EnemyShotRadius  float64 `yaml:"enemyShotRadius"`  // 敌方子弹命中半径
	PlayerHitbox     float64 `yaml:"playerHitbox"`     // 玩家身体碰撞半径
	KnockbackX       float64 `yaml:"knockbackX"`
	KnockbackY       float64 `yaml:"knockbackY"`
	RamDamage        float64 `yaml:"ramDamage"`        // 接触时敌人承受的反伤
	PowerUpRadius    float64 `yaml:"powerUpRadius"`    // 道具拾取半径
	EnemyPruneMargin float64 `yaml:"enemyPruneMargin"` // 敌人越过左边缘多远后移除

	Combo         ComboConfig        `yaml:"combo"`
	Drops         DropConfig         `yaml:"drops"`
	PowerUps      PowerUpConfig      `yaml:"powerUps"`
	Pickups       PickupConfig       `yaml:"pickups"`
	DamageNumbers DamageNumberConfig `yaml:"damageNumbers"`
}

// ComboConfig 连击参数
type ComboConfig struct {
	Timeout     float64 `yaml:"timeout"`
	BonusPerHit int     `yaml:"bonusPerHit"` // 奖励 = bonusPerHit * (count - 1)
}

// PowerUpWeight 道具掉落权重项
type PowerUpWeight struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}

// DropConfig 掉落参数
type DropConfig struct {
	PowerUpChance  float64         `yaml:"powerUpChance"`
	WeaponChance   float64         `yaml:"weaponChance"`
	PowerUpWeights []PowerUpWeight `yaml:"powerUpWeights"` // 有序列表，按顺序累加
}

// PowerUpConfig 道具效果与运动参数
type PowerUpConfig struct {
	HealthAmount float64 `yaml:"healthAmount"`
	AmmoAmount   int     `yaml:"ammoAmount"`
	ChargeAmount float64 `yaml:"chargeAmount"`
	Speed        float64 `yaml:"speed"`
	BobFrequency float64 `yaml:"bobFrequency"`
	BobAmplitude float64 `yaml:"bobAmplitude"`
	PruneMargin  float64 `yaml:"pruneMargin"`
}

// PickupConfig 武器拾取物参数
type PickupConfig struct {
	Lifetime    float64 `yaml:"lifetime"`
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"` // 交互范围
	PruneMargin float64 `yaml:"pruneMargin"`
}

// DamageNumberConfig 伤害数字参数
type DamageNumberConfig struct {
	BulletLifetime float64 `yaml:"bulletLifetime"`
	BeamLifetime   float64 `yaml:"beamLifetime"`
	RiseSpeed      float64 `yaml:"riseSpeed"`
	AnchorOffset   float64 `yaml:"anchorOffset"` // 光束伤害数字相对敌人的垂直偏移
}

// LoadCombatConfig 从 YAML 文件加载战斗配置
func LoadCombatConfig(filePath string) (*CombatConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read combat config file %s: %w", filePath, err)
	}

	var config CombatConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse combat config YAML from %s: %w", filePath, err)
	}

	if err := validateCombatConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid combat config in %s: %w", filePath, err)
	}

	return &config, nil
}

// validateCombatConfig 验证战斗配置
func validateCombatConfig(config *CombatConfig) error {
	if config.Combo.Timeout <= 0 {
		return fmt.Errorf("combo.timeout must be positive, got %v", config.Combo.Timeout)
	}
	if config.BeamTickFraction < 0 || config.BeamTickFraction > 1 {
		return fmt.Errorf("beamTickFraction must be within [0, 1], got %v", config.BeamTickFraction)
	}
	for name, p := range map[string]float64{
		"drops.powerUpChance": config.Drops.PowerUpChance,
		"drops.weaponChance":  config.Drops.WeaponChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, p)
		}
	}
	if len(config.Drops.PowerUpWeights) == 0 {
		return fmt.Errorf("drops.powerUpWeights cannot be empty")
	}
	for _, w := range config.Drops.PowerUpWeights {
		if _, ok := types.PowerUpKindFromString(w.Kind); !ok {
			return fmt.Errorf("drops.powerUpWeights: unknown power-up kind %q", w.Kind)
		}
		if w.Weight < 0 {
			return fmt.Errorf("drops.powerUpWeights: weight for %s cannot be negative", w.Kind)
		}
	}
	if config.Pickups.Lifetime <= 0 {
		return fmt.Errorf("pickups.lifetime must be positive, got %v", config.Pickups.Lifetime)
	}
	return nil
}
