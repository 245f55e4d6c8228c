package systems

import (
	"testing"

	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/entities"
	"github.com/decker502/jetstrike/pkg/types"
)

func placePlayer(r *testRig, x, y float64) {
	r.world.Player.Position.X = x
	r.world.Player.Position.Y = y
}

func TestContactDamage(t *testing.T) {
	r := newTestRig(t)
	placePlayer(r, 0, 0)
	id := r.spawnEnemy(types.EnemySquare, types.BehaviorSolo, 2, 0)
	r.combo.RegisterHit()
	r.combo.RegisterHit()

	res := r.collision.Update(false)

	p := r.world.Player
	if p.Health.Current != 80 {
		t.Errorf("player health: got %v, want 80", p.Health.Current)
	}
	e, _ := r.world.Enemies.Get(id)
	if e.Health.Current != 10 {
		t.Errorf("enemy should take 20 ramming damage, health %v", e.Health.Current)
	}
	if r.combo.Count() != 0 {
		t.Errorf("combo should reset, got %d", r.combo.Count())
	}
	if p.Velocity.VX >= 0 {
		t.Errorf("knockback should push left, vx=%v", p.Velocity.VX)
	}
	if res.PlayerHits != 1 {
		t.Errorf("player hits: got %d", res.PlayerHits)
	}
}

func TestContactKnockbackDirection(t *testing.T) {
	r := newTestRig(t)
	placePlayer(r, 0, 0)
	r.spawnEnemy(types.EnemySquare, types.BehaviorSolo, -2, 1)

	r.collision.Update(false)
	p := r.world.Player
	if p.Velocity.VX != 30 || p.Velocity.VY != -10 {
		t.Errorf("knockback: got (%v, %v), want (30, -10)", p.Velocity.VX, p.Velocity.VY)
	}
}

func TestShieldedContactKillsEnemy(t *testing.T) {
	r := newTestRig(t)
	placePlayer(r, 0, 0)
	id := r.spawnEnemy(types.EnemyPentagon, types.BehaviorSolo, 2, 0)
	r.player.SetShield(0)

	res := r.collision.Update(false)
	if r.world.Player.Health.Current != 100 {
		t.Error("shielded player should be unharmed")
	}
	if r.world.Enemies.IsAlive(id) || res.Kills != 1 {
		t.Error("enemy should take lethal damage")
	}
}

func TestBulletHitsOneEnemy(t *testing.T) {
	r := newTestRig(t)
	first := r.spawnEnemy(types.EnemySquare, types.BehaviorSolo, 20, 0)
	second := r.spawnEnemy(types.EnemySquare, types.BehaviorSolo, 20.5, 0)
	r.world.Projectiles.Create(entities.NewPlayerBullet(20, 0, 0, 200, 10, 0))

	res := r.collision.Update(false)
	if res.BulletHits != 1 {
		t.Fatalf("bullet hits: got %d, want 1", res.BulletHits)
	}
	a, _ := r.world.Enemies.Get(first)
	b, _ := r.world.Enemies.Get(second)
	if a.Health.Current != 20 || b.Health.Current != 30 {
		t.Errorf("only the first enemy should be hit: %v / %v", a.Health.Current, b.Health.Current)
	}
	if r.countProjectiles(types.OwnerPlayer) != 0 {
		t.Error("bullet should be removed on hit")
	}
	if r.world.DamageNumbers.Len() != 1 {
		t.Errorf("damage numbers: got %d, want 1", r.world.DamageNumbers.Len())
	}
	if r.combo.Count() != 1 {
		t.Errorf("combo: got %d, want 1", r.combo.Count())
	}
}

func TestBulletMissesOutsideRadius(t *testing.T) {
	r := newTestRig(t)
	r.spawnEnemy(types.EnemySquare, types.BehaviorSolo, 20, 0)
	// 半径 3.5 + 0.8 = 4.3
	r.world.Projectiles.Create(entities.NewPlayerBullet(24.4, 0, 0, 200, 10, 0))

	if res := r.collision.Update(false); res.BulletHits != 0 {
		t.Error("bullet outside size+radius should miss")
	}
}

func TestBeamAccumulatesDamageNumber(t *testing.T) {
	r := newTestRig(t)
	placePlayer(r, 0, 0)
	ahead := r.spawnEnemy(types.EnemyPentagon, types.BehaviorSolo, 40, 1)
	behind := r.spawnEnemy(types.EnemyPentagon, types.BehaviorSolo, -20, 1)
	offLine := r.spawnEnemy(types.EnemyPentagon, types.BehaviorSolo, 40, 20)

	for i := 0; i < 3; i++ {
		r.collision.Update(true)
	}

	e, _ := r.world.Enemies.Get(ahead)
	if !approx(e.Health.Current, 60-3*4) {
		t.Errorf("beam target health: got %v, want 48", e.Health.Current)
	}
	for _, id := range []ecs.EntityID{behind, offLine} {
		other, _ := r.world.Enemies.Get(id)
		if other.Health.Current != 60 {
			t.Errorf("enemy outside the beam was hit: %+v", other.Position)
		}
	}

	if r.world.DamageNumbers.Len() != 1 {
		t.Fatalf("beam should reuse one damage number, got %d", r.world.DamageNumbers.Len())
	}
	n, ok := r.world.DamageNumbers.Get(e.BeamNumber)
	if !ok || n.Target != ahead || !approx(n.Amount, 12) {
		t.Errorf("beam number mismatch: %+v", n)
	}
	if r.combo.Count() != 3 {
		t.Errorf("each beam tick is a combo hit, got %d", r.combo.Count())
	}
}

func TestEnemyShotHitsPlayer(t *testing.T) {
	r := newTestRig(t)
	placePlayer(r, 0, 0)
	shot, _ := entities.NewEnemyShot(ecs.InvalidEntity, 3, 0, 0, 0, 30, 10)
	id, _ := r.world.Projectiles.Create(shot)
	r.combo.RegisterHit()

	r.collision.Update(false)
	if r.world.Player.Health.Current != 90 {
		t.Errorf("player health: got %v, want 90", r.world.Player.Health.Current)
	}
	if r.world.Projectiles.IsAlive(id) {
		t.Error("shot should be removed on hit")
	}
	if r.combo.Count() != 0 {
		t.Error("taking damage should reset the combo")
	}
}

func TestEnemyShotIgnoredWhileShielded(t *testing.T) {
	r := newTestRig(t)
	placePlayer(r, 0, 0)
	shot, _ := entities.NewEnemyShot(ecs.InvalidEntity, 3, 0, 0, 0, 30, 10)
	id, _ := r.world.Projectiles.Create(shot)
	r.player.SetShield(0)

	r.collision.Update(false)
	if !r.world.Projectiles.IsAlive(id) {
		t.Error("shots are skipped entirely while shielded")
	}
}

func TestPowerUpPickup(t *testing.T) {
	r := newTestRig(t)
	placePlayer(r, 0, 0)
	p := r.world.Player
	p.Health.Current = 90
	near := r.powerUps.Spawn(types.PowerUpHealth, 5, 0)
	far := r.powerUps.Spawn(types.PowerUpHealth, 15, 0)

	res := r.collision.Update(false)
	if res.PowerUpsPicked != 1 {
		t.Errorf("picked: got %d, want 1", res.PowerUpsPicked)
	}
	if p.Health.Current != 100 {
		t.Errorf("health should clamp to max, got %v", p.Health.Current)
	}
	if r.world.PowerUps.IsAlive(near) || !r.world.PowerUps.IsAlive(far) {
		t.Error("only the nearby power-up should be collected")
	}
}
