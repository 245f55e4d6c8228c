package config

import (
	"fmt"

	"github.com/decker502/jetstrike/pkg/types"
	"gopkg.in/yaml.v3"
)

// WeaponStats 单个武器的配置
type WeaponStats struct {
	Damage       float64 `yaml:"damage"`
	FireInterval float64 `yaml:"fireInterval"`

	UnlimitedAmmo bool `yaml:"unlimitedAmmo"`
	MaxAmmo       int  `yaml:"maxAmmo"`

	MaxCharge  float64 `yaml:"maxCharge"`
	ChargeRate float64 `yaml:"chargeRate"`

	MaxHeat          float64 `yaml:"maxHeat"`
	HeatRate         float64 `yaml:"heatRate"`
	CoolRate         float64 `yaml:"coolRate"`
	OverheatCooldown float64 `yaml:"overheatCooldown"`

	Pellets       int     `yaml:"pellets"`       // 每次发射的弹丸数
	SpreadDegrees float64 `yaml:"spreadDegrees"` // 扇形总角度（含两端）
}

// ProjectileConfig 玩家子弹的飞行参数
type ProjectileConfig struct {
	Speed   float64 `yaml:"speed"`
	Drop    float64 `yaml:"drop"`    // 每帧下坠 drop * dt^2
	MuzzleX float64 `yaml:"muzzleX"` // 枪口相对玩家位置的偏移
	MuzzleY float64 `yaml:"muzzleY"`
}

// WeaponsConfig 武器配置文件结构
type WeaponsConfig struct {
	Weapons    map[string]WeaponStats `yaml:"weapons"` // 武器种类到配置的映射
	Projectile ProjectileConfig       `yaml:"projectile"`
}

// LoadWeapons 从 YAML 文件加载武器配置
func LoadWeapons(filePath string) (*WeaponsConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapons file %s: %w", filePath, err)
	}

	var config WeaponsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse weapons YAML from %s: %w", filePath, err)
	}

	if err := validateWeapons(&config); err != nil {
		return nil, fmt.Errorf("invalid weapons config in %s: %w", filePath, err)
	}

	return &config, nil
}

// validateWeapons 验证武器配置
func validateWeapons(config *WeaponsConfig) error {
	for _, kind := range types.AllWeaponKinds {
		w, ok := config.Weapons[kind.String()]
		if !ok {
			return fmt.Errorf("weapon %s: missing config", kind)
		}
		if w.Damage < 0 {
			return fmt.Errorf("weapon %s: damage cannot be negative, got %v", kind, w.Damage)
		}
		if w.FireInterval < 0 {
			return fmt.Errorf("weapon %s: fireInterval cannot be negative, got %v", kind, w.FireInterval)
		}
	}

	spread := config.Weapons[types.WeaponSpread.String()]
	if spread.Pellets < 1 {
		return fmt.Errorf("weapon spread: pellets must be at least 1, got %d", spread.Pellets)
	}
	if !spread.UnlimitedAmmo && spread.MaxAmmo < 1 {
		return fmt.Errorf("weapon spread: maxAmmo must be at least 1, got %d", spread.MaxAmmo)
	}

	beam := config.Weapons[types.WeaponBeam.String()]
	if beam.MaxCharge <= 0 || beam.ChargeRate <= 0 {
		return fmt.Errorf("weapon beam: maxCharge and chargeRate must be positive")
	}
	if beam.MaxHeat <= 0 || beam.HeatRate <= 0 {
		return fmt.Errorf("weapon beam: maxHeat and heatRate must be positive")
	}
	if beam.OverheatCooldown < 0 {
		return fmt.Errorf("weapon beam: overheatCooldown cannot be negative, got %v", beam.OverheatCooldown)
	}

	if config.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile speed must be positive, got %v", config.Projectile.Speed)
	}

	return nil
}

// GetWeaponStats 获取指定武器的配置
func (c *WeaponsConfig) GetWeaponStats(kind types.WeaponKind) WeaponStats {
	return c.Weapons[kind.String()]
}
