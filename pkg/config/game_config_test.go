package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// repoDataDir 仓库中的数据表目录（测试时 embedded 未初始化，走本地文件系统）
const repoDataDir = "../../data"

func TestLoadGameConfigMatchesDefaults(t *testing.T) {
	loaded, err := LoadGameConfig(repoDataDir)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	defaults := DefaultGameConfig()

	t.Run("敌人属性", func(t *testing.T) {
		if !reflect.DeepEqual(loaded.Enemies, defaults.Enemies) {
			t.Errorf("enemy_stats.yaml differs from defaults:\n got %+v\nwant %+v", loaded.Enemies, defaults.Enemies)
		}
	})
	t.Run("出怪规则", func(t *testing.T) {
		if !reflect.DeepEqual(loaded.Spawn, defaults.Spawn) {
			t.Errorf("spawn_rules.yaml differs from defaults:\n got %+v\nwant %+v", loaded.Spawn, defaults.Spawn)
		}
	})
	t.Run("武器", func(t *testing.T) {
		if !reflect.DeepEqual(loaded.Weapons, defaults.Weapons) {
			t.Errorf("weapons.yaml differs from defaults:\n got %+v\nwant %+v", loaded.Weapons, defaults.Weapons)
		}
	})
	t.Run("玩家", func(t *testing.T) {
		if !reflect.DeepEqual(loaded.Player, defaults.Player) {
			t.Errorf("player.yaml differs from defaults:\n got %+v\nwant %+v", loaded.Player, defaults.Player)
		}
	})
	t.Run("战斗", func(t *testing.T) {
		if !reflect.DeepEqual(loaded.Combat, defaults.Combat) {
			t.Errorf("combat.yaml differs from defaults:\n got %+v\nwant %+v", loaded.Combat, defaults.Combat)
		}
	})
	t.Run("世界", func(t *testing.T) {
		if !reflect.DeepEqual(loaded.World, defaults.World) {
			t.Errorf("world.yaml differs from defaults:\n got %+v\nwant %+v", loaded.World, defaults.World)
		}
	})
}

func TestDefaultGameConfigValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	incomplete := &GameConfig{}
	if err := incomplete.Validate(); err == nil {
		t.Error("incomplete config should fail validation")
	}
}

func TestLoadGameConfigMissingDir(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

// writeConfig 写入临时配置文件并返回路径
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadWorldConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name: "难度初值小于1",
			content: `
difficulty: {initial: 0, step: 0.25, interval: 30}
dayNight: {cycleDuration: 120, transitionSpeed: 0.3}
biome: {count: 4, interval: 120}
viewport: {height: 100, aspect: 1.5}
`,
			errPart: "difficulty.initial",
		},
		{
			name: "视口非法",
			content: `
difficulty: {initial: 1, step: 0.25, interval: 30}
dayNight: {cycleDuration: 120, transitionSpeed: 0.3}
biome: {count: 4, interval: 120}
viewport: {height: 0, aspect: 1.5}
`,
			errPart: "viewport",
		},
		{
			name:    "YAML 格式错误",
			content: "difficulty: [",
			errPart: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "world.yaml", tt.content)
			_, err := LoadWorldConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q should mention %q", err, tt.errPart)
			}
		})
	}
}

func TestLoadPlayerConfig(t *testing.T) {
	t.Run("加载有效配置文件", func(t *testing.T) {
		path := writeConfig(t, "player.yaml", `
maxHealth: 120
baseSpeed: 25
friction: 0.8
deathDelay: 0.5
jetpack:
  - maxFuel: 50
    consumption: 10
    regen: 5
  - unlimited: true
    speedBonus: 1
`)
		cfg, err := LoadPlayerConfig(path)
		if err != nil {
			t.Fatalf("LoadPlayerConfig failed: %v", err)
		}
		if cfg.MaxHealth != 120 {
			t.Errorf("MaxHealth: got %v, want 120", cfg.MaxHealth)
		}
		if cfg.MaxJetpackLevel() != 1 {
			t.Errorf("MaxJetpackLevel: got %d, want 1", cfg.MaxJetpackLevel())
		}
		if !cfg.JetpackLevelAt(5).Unlimited {
			t.Error("JetpackLevelAt beyond range should clamp to the top level")
		}
		if cfg.JetpackLevelAt(-1).MaxFuel != 50 {
			t.Error("JetpackLevelAt below range should clamp to level 0")
		}
	})

	t.Run("缺少喷气背包等级", func(t *testing.T) {
		path := writeConfig(t, "player.yaml", "maxHealth: 100\nbaseSpeed: 20\nfriction: 0.9\n")
		if _, err := LoadPlayerConfig(path); err == nil {
			t.Error("expected error without jetpack levels")
		}
	})
}

func TestLoadCombatConfigInvalidDropKind(t *testing.T) {
	path := writeConfig(t, "combat.yaml", `
combo: {timeout: 2, bonusPerHit: 5}
beamTickFraction: 0.1
drops:
  powerUpChance: 0.1
  weaponChance: 0.2
  powerUpWeights:
    - kind: shield
      weight: 10
pickups: {lifetime: 10}
`)
	_, err := LoadCombatConfig(path)
	if err == nil || !strings.Contains(err.Error(), "shield") {
		t.Errorf("expected unknown power-up kind error, got %v", err)
	}
}
