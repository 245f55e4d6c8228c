package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

// quietConfig 返回不会自动出怪、不掉落的配置，便于构造确定的场景
func quietConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Spawn.BaseInterval = 1e9
	cfg.Combat.Drops.PowerUpChance = 0
	cfg.Combat.Drops.WeaponChance = 0
	return cfg
}

func newQuietScene(t *testing.T) *BattleScene {
	t.Helper()
	return NewBattleScene(quietConfig(), 1)
}

func spawnAt(s *BattleScene, kind types.EnemyKind, x, y float64) entities.Enemy {
	_, e := s.World().Enemies.Create(entities.NewEnemy(s.cfg.Enemies, entities.EnemySpawn{
		Kind: kind, Behavior: types.BehaviorSolo, X: x, Y: y, Difficulty: 1,
	}))
	return *e
}

// 场景 A：接触伤害、反伤、连击中断与击退
func TestScenarioContactDamage(t *testing.T) {
	s := newQuietScene(t)
	p := s.World().Player
	p.Position.X, p.Position.Y = 0, 0

	_, enemy := s.World().Enemies.Create(entities.NewEnemy(s.cfg.Enemies, entities.EnemySpawn{
		Kind: types.EnemySquare, Behavior: types.BehaviorSolo, X: 2, Y: 0, Difficulty: 1,
	}))
	require.Equal(t, 20.0, enemy.Damage)
	s.Combo().RegisterHit()
	s.Combo().RegisterHit()

	s.Update(0.01, components.InputIntent{})

	assert.Equal(t, 80.0, p.Health.Current)
	assert.Equal(t, 0, s.Combo().Count())
	assert.Less(t, p.Velocity.VX, 0.0, "knockback should push the player left")

	snap := s.Snapshot()
	require.Len(t, snap.Enemies, 1)
	assert.InDelta(t, 10.0/30.0, snap.Enemies[0].HealthFraction, 1e-9)
}

// 场景 B：散射只剩一发弹药
func TestScenarioSpreadLastShell(t *testing.T) {
	s := newQuietScene(t)
	p := s.World().Player
	p.Slot(types.WeaponSpread).Ammo = 1

	s.Update(0.1, components.InputIntent{SelectWeapon2: true, Fire: true})
	fire := s.LastFire()
	assert.True(t, fire.Fired)
	assert.Equal(t, 8, fire.Projectiles)
	assert.Equal(t, 0, p.Slot(types.WeaponSpread).Ammo)

	s.Update(0.1, components.InputIntent{Fire: true})
	assert.Equal(t, 0, s.LastFire().Projectiles)
	assert.Equal(t, types.WeaponPrimary, p.Weapons.Active)
	assert.Equal(t, 0, p.Slot(types.WeaponSpread).Ammo)
}

// 场景 C：光束持续开火 10 秒，过热先于能量耗尽
func TestScenarioBeamOverheat(t *testing.T) {
	s := newQuietScene(t)
	p := s.World().Player
	hold := components.InputIntent{SelectWeapon3: true, Fire: true}

	const dt = 0.25
	var firing []bool
	for i := 1; i <= 40; i++ {
		s.Update(dt, hold)
		firing = append(firing, s.LastFire().Beam)
		if i == 12 {
			require.True(t, p.Slot(types.WeaponBeam).Overheated, "heat reaches max at t=3.0")
		}
		if i == 16 {
			assert.False(t, p.Slot(types.WeaponBeam).Overheated, "cooldown elapses at t=4.0")
		}
	}

	for i, fired := range firing {
		frame := i + 1
		blocked := (frame >= 13 && frame <= 15) || (frame >= 28 && frame <= 30)
		assert.Equal(t, !blocked, fired, "frame %d (t=%.2f)", frame, float64(frame)*dt)
	}

	beam := p.Slot(types.WeaponBeam)
	assert.InDelta(t, 100-34*2.5, beam.Charge, 1e-9)
	assert.Equal(t, types.WeaponBeam, p.Weapons.Active)
}

// 场景 D：未拾取的武器在 10 秒时自动移除
func TestScenarioPickupExpires(t *testing.T) {
	s := newQuietScene(t)
	id := s.Pickups().Spawn(types.WeaponSpread, 60, 30)
	wp, ok := s.World().Pickups.Get(id)
	require.True(t, ok)
	wp.Velocity.VX = 0

	for i := 1; i <= 19; i++ {
		s.Update(0.5, components.InputIntent{Interact: true})
		require.True(t, s.World().Pickups.IsAlive(id), "alive at t=%.1f", float64(i)*0.5)
	}
	s.Update(0.5, components.InputIntent{Interact: true})
	assert.False(t, s.World().Pickups.IsAlive(id))
	assert.Equal(t, types.WeaponPrimary, s.World().Player.Weapons.Active)
}

func TestPauseSkipsUpdate(t *testing.T) {
	s := newQuietScene(t)
	s.SetPaused(true)
	require.True(t, s.IsPaused())

	s.Update(1, components.InputIntent{MoveRight: true})
	assert.Equal(t, -40.0, s.World().Player.Position.X)
	assert.Equal(t, 0.0, s.Difficulty().Elapsed())

	s.SetPaused(false)
	s.Update(1, components.InputIntent{MoveRight: true})
	assert.Greater(t, s.World().Player.Position.X, -40.0)
}

func TestGameOverAfterDeathCountdown(t *testing.T) {
	s := newQuietScene(t)
	var calls []int
	s.OnGameOver(func(final int) { calls = append(calls, final) })
	s.State().AddScore(120)

	s.Damage().DamagePlayer(1000)
	s.Update(0.5, components.InputIntent{})
	assert.False(t, s.IsGameOver(), "countdown still running")
	s.Update(0.5, components.InputIntent{})
	require.True(t, s.IsGameOver())

	s.Update(0.5, components.InputIntent{})
	elapsed := s.Difficulty().Elapsed()
	s.Update(0.5, components.InputIntent{})
	assert.Equal(t, elapsed, s.Difficulty().Elapsed(), "no updates after game over")
	assert.Equal(t, []int{120}, calls)
}

func TestRestart(t *testing.T) {
	s := newQuietScene(t)
	var scores []int
	s.OnScoreChanged(func(total int) { scores = append(scores, total) })

	spawnAt(s, types.EnemyTriangle, 50, 0)
	s.State().AddScore(30)
	s.Damage().DamagePlayer(1000)
	s.Update(0.5, components.InputIntent{})
	s.Update(0.5, components.InputIntent{})
	require.True(t, s.IsGameOver())

	s.Restart()
	assert.False(t, s.IsGameOver())
	assert.Equal(t, 0, s.State().GetScore())
	assert.Equal(t, []int{30, 0}, scores)
	assert.Equal(t, 0, s.World().Enemies.Len())
	assert.True(t, s.World().Player.Alive())
	assert.Equal(t, 100.0, s.World().Player.Health.Current)
	assert.Equal(t, 1.0, s.Difficulty().Level())
	assert.Equal(t, 0, s.Spawner().WavesSpawned())

	s.Update(0.1, components.InputIntent{})
	assert.Equal(t, 0.1, s.Difficulty().Elapsed())
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() Snapshot {
		s := NewBattleScene(config.DefaultGameConfig(), 99)
		for i := 0; i < 600; i++ {
			s.Update(1.0/60, components.InputIntent{Fire: true, MoveUp: i%120 < 60})
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Waves, b.Waves)
	assert.Equal(t, a.Enemies, b.Enemies)
	assert.Greater(t, a.Waves, 0)
}

func TestSnapshotFields(t *testing.T) {
	s := newQuietScene(t)
	spawnAt(s, types.EnemyCircle, 30, 5)
	s.PowerUps().Spawn(types.PowerUpFuel, 40, 0)
	s.Update(1.0/60, components.InputIntent{SelectWeapon3: true, Fire: true})

	snap := s.Snapshot()
	assert.Equal(t, types.WeaponBeam, snap.Weapon.Kind)
	assert.True(t, snap.Player.BeamActive)
	assert.Equal(t, 100.0, snap.Player.MaxHealth)
	assert.Equal(t, 100.0, snap.Weapon.MaxCharge)
	assert.Len(t, snap.Enemies, 1)
	assert.Len(t, snap.PowerUps, 1)
	assert.Equal(t, 1.0, snap.Difficulty)
	assert.False(t, snap.Night)
	assert.Equal(t, s.World().Camera, snap.Camera)
}

func TestSetViewport(t *testing.T) {
	s := newQuietScene(t)
	cam := entities.NewCamera(60, 2)
	s.SetViewport(cam)

	s.Update(0.1, components.InputIntent{MoveUp: true})
	assert.LessOrEqual(t, s.World().Player.Position.Y, cam.Top-5)
	assert.GreaterOrEqual(t, s.World().Player.Position.X, cam.Left+5)
}
