package config

import (
	"fmt"
	"log"
	"path/filepath"
)

// 数据表文件名
const (
	EnemyStatsFile = "enemy_stats.yaml"
	SpawnRulesFile = "spawn_rules.yaml"
	WeaponsFile    = "weapons.yaml"
	PlayerFile     = "player.yaml"
	CombatFile     = "combat.yaml"
	WorldFile      = "world.yaml"
)

// DefaultDataDir 嵌入数据表所在目录
const DefaultDataDir = "data"

// GameConfig 汇总模拟所需的全部数据表
type GameConfig struct {
	Enemies *EnemyStatsConfig
	Spawn   *SpawnRulesConfig
	Weapons *WeaponsConfig
	Player  *PlayerConfig
	Combat  *CombatConfig
	World   *WorldConfig
}

// LoadGameConfig 从目录加载全部数据表
//
// 参数：
//   - dir: 数据目录，"data" 表示嵌入数据表，其它路径从本地文件系统读取
//
// 返回：
//   - *GameConfig: 加载的配置
//   - error: 任一数据表读取、解析或校验失败时返回错误
func LoadGameConfig(dir string) (*GameConfig, error) {
	var (
		cfg GameConfig
		err error
	)

	if cfg.Enemies, err = LoadEnemyStats(filepath.Join(dir, EnemyStatsFile)); err != nil {
		return nil, err
	}
	if cfg.Spawn, err = LoadSpawnRules(filepath.Join(dir, SpawnRulesFile)); err != nil {
		return nil, err
	}
	if cfg.Weapons, err = LoadWeapons(filepath.Join(dir, WeaponsFile)); err != nil {
		return nil, err
	}
	if cfg.Player, err = LoadPlayerConfig(filepath.Join(dir, PlayerFile)); err != nil {
		return nil, err
	}
	if cfg.Combat, err = LoadCombatConfig(filepath.Join(dir, CombatFile)); err != nil {
		return nil, err
	}
	if cfg.World, err = LoadWorldConfig(filepath.Join(dir, WorldFile)); err != nil {
		return nil, err
	}

	log.Printf("[GameConfig] Loaded data tables from %s", dir)
	return &cfg, nil
}

// Validate 校验内存中的配置（用于代码构造的配置）
func (c *GameConfig) Validate() error {
	if c.Enemies == nil || c.Spawn == nil || c.Weapons == nil || c.Player == nil || c.Combat == nil || c.World == nil {
		return fmt.Errorf("game config is incomplete")
	}
	if err := validateEnemyStats(c.Enemies); err != nil {
		return fmt.Errorf("enemy stats: %w", err)
	}
	if err := validateSpawnRules(c.Spawn); err != nil {
		return fmt.Errorf("spawn rules: %w", err)
	}
	if err := validateWeapons(c.Weapons); err != nil {
		return fmt.Errorf("weapons: %w", err)
	}
	if err := validatePlayerConfig(c.Player); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := validateCombatConfig(c.Combat); err != nil {
		return fmt.Errorf("combat: %w", err)
	}
	if err := validateWorldConfig(c.World); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	return nil
}

// DefaultGameConfig 返回内置默认配置
// 与 data/*.yaml 保持一致，用于无数据文件的场景（测试、无头模拟）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Enemies: &EnemyStatsConfig{
			BaseSpeed:            30,
			SpeedPerDifficulty:   5,
			NightSpeedMultiplier: 1.3,
			Enemies: map[string]EnemyStats{
				"triangle": {Health: 15, Size: 2.5, SpeedFactor: 1.2, Damage: 10, Points: 10, Weight: 6},
				"square":   {Health: 30, Size: 3.5, SpeedFactor: 0.8, Damage: 20, Points: 20, Weight: 4},
				"circle":   {Health: 40, Size: 4, SpeedFactor: 0.7, Damage: 15, Points: 50, Weight: 2, SplitsOnDeath: true},
				"pentagon": {Health: 60, Size: 4.5, SpeedFactor: 0.6, Damage: 30, Points: 100, Weight: 1, Shoots: true},
			},
			Behaviors: map[string]BehaviorModifiers{
				"solo":      {SpeedMultiplier: 1, SizeMultiplier: 1, HealthMultiplier: 1},
				"formation": {SpeedMultiplier: 1, SizeMultiplier: 1, HealthMultiplier: 1.2},
				"swarm":     {SpeedMultiplier: 1.1, SizeMultiplier: 0.8, HealthMultiplier: 0.7},
			},
			Movement: MovementConfig{
				SoloVerticalDamping:  0.7,
				FormationSpeedFactor: 0.8,
				SineAmplitude:        20,
				SineFrequency:        1,
				SineGain:             2,
				SwarmRedrawChance:    0.05,
				SwarmVerticalDecay:   0.98,
				SwarmMinSpeedFactor:  0.2,
				SwarmFloorFactor:     0.3,
			},
			Split: SplitConfig{
				MinSize:      2,
				MinChildren:  2,
				MaxChildren:  3,
				SizeFactor:   0.5,
				HealthFactor: 0.4,
				SpeedFactor:  1.2,
				Radius:       2,
			},
			Shooter: ShooterConfig{
				BaseCooldown:     2,
				ProjectileSpeed:  30,
				ProjectileDamage: 10,
			},
		},
		Spawn: &SpawnRulesConfig{
			BaseInterval:          2,
			IntervalDecay:         0.9,
			BaseWaveSize:          4,
			WaveSizePerDifficulty: 0.5,
			MaxWaveSize:           15,
			Patterns: PatternWeightsConfig{
				Solo:      PatternWeight{Base: 3, Slope: -0.3, Cap: 2},
				Formation: PatternWeight{Base: 1, Slope: 0.2, Cap: 2},
				Swarm:     PatternWeight{Base: 0, Slope: 0.5, Cap: 3},
			},
			Solo:      SoloSpawnConfig{XOffset: 5, YSpread: 0.8},
			Formation: FormationSpawnConfig{XOffset: 5, YSpread: 0.5, VSpacing: 5, VSlope: 2, SineSpacing: 3},
			Swarm:     SwarmSpawnConfig{ExtraMembers: 5, XOffset: 10, YSpread: 0.5, Radius: 10, TriangleChance: 0.8},
		},
		Weapons: &WeaponsConfig{
			Weapons: map[string]WeaponStats{
				"primary": {Damage: 10, FireInterval: 0.1, UnlimitedAmmo: true, Pellets: 1},
				"spread":  {Damage: 10, FireInterval: 0.75, MaxAmmo: 30, Pellets: 8, SpreadDegrees: 20},
				"beam": {
					Damage:           40,
					MaxCharge:        100,
					ChargeRate:       10,
					MaxHeat:          3,
					HeatRate:         1,
					CoolRate:         2,
					OverheatCooldown: 1,
				},
			},
			Projectile: ProjectileConfig{Speed: 200, Drop: 50, MuzzleX: 6, MuzzleY: 2},
		},
		Player: &PlayerConfig{
			MaxHealth:          100,
			StartX:             -40,
			StartY:             0,
			BaseSpeed:          20,
			Friction:           0.9,
			Gravity:            45,
			SidewaysFuelFactor: 0.2,
			Margin:             5,
			Recoil:             5,
			DeathDelay:         1,
			Jetpack: []JetpackLevel{
				{MaxFuel: 100, Consumption: 30, Regen: 15, SpeedBonus: 0, Shake: 0},
				{MaxFuel: 200, Consumption: 25, Regen: 20, SpeedBonus: 0.3, Shake: 0.1},
				{MaxFuel: 300, SpeedBonus: 0.6, Shake: 0.3, Unlimited: true},
			},
		},
		Combat: &CombatConfig{
			ProjectileRadius: 0.8,
			BeamYOffset:      1,
			BeamTickFraction: 0.1,
			EnemyShotRadius:  4,
			PlayerHitbox:     2,
			KnockbackX:       30,
			KnockbackY:       10,
			RamDamage:        20,
			PowerUpRadius:    10,
			EnemyPruneMargin: 10,
			Combo:            ComboConfig{Timeout: 2, BonusPerHit: 5},
			Drops: DropConfig{
				PowerUpChance: 0.1,
				WeaponChance:  0.2,
				PowerUpWeights: []PowerUpWeight{
					{Kind: "health", Weight: 35},
					{Kind: "fuel", Weight: 30},
					{Kind: "spreadAmmo", Weight: 15},
					{Kind: "beamCharge", Weight: 10},
					{Kind: "mobility", Weight: 10},
				},
			},
			PowerUps: PowerUpConfig{
				HealthAmount: 25,
				AmmoAmount:   30,
				ChargeAmount: 50,
				Speed:        20,
				BobFrequency: 3,
				BobAmplitude: 0.5,
				PruneMargin:  5,
			},
			Pickups:       PickupConfig{Lifetime: 10, Speed: 20, Radius: 20, PruneMargin: 10},
			DamageNumbers: DamageNumberConfig{BulletLifetime: 1, BeamLifetime: 1.2, RiseSpeed: 10, AnchorOffset: 5},
		},
		World: &WorldConfig{
			Difficulty: DifficultyConfig{Initial: 1, Step: 0.25, Interval: 30},
			DayNight:   DayNightConfig{CycleDuration: 120, TransitionSpeed: 0.3},
			Biome:      BiomeConfig{Count: 4, Interval: 120},
			Viewport:   ViewportConfig{Height: 100, Aspect: 16.0 / 9.0},
		},
	}
}
