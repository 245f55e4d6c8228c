package systems

import (
	"testing"

	"github.com/decker502/jetstrike/pkg/ecs"
	"github.com/decker502/jetstrike/pkg/types"
)

func TestWeaponPickupExpires(t *testing.T) {
	r := newTestRig(t)
	id := r.pickups.Spawn(types.WeaponSpread, 50, 30)
	wp, _ := r.world.Pickups.Get(id)
	wp.Velocity.VX = 0

	for i := 0; i < 19; i++ {
		r.pickups.Update(0.5, true)
	}
	if !r.world.Pickups.IsAlive(id) {
		t.Fatal("pickup should live until 10s")
	}
	r.pickups.Update(0.5, true)
	if r.world.Pickups.IsAlive(id) {
		t.Error("pickup should expire at 10s")
	}
	if r.world.Player.Weapons.Active != types.WeaponPrimary {
		t.Error("expired pickup must never be collected")
	}
}

func TestWeaponPickupRequiresInteract(t *testing.T) {
	r := newTestRig(t)
	p := r.world.Player
	id := r.pickups.Spawn(types.WeaponBeam, p.Position.X+10, p.Position.Y)
	p.Slot(types.WeaponBeam).Charge = 5
	p.Slot(types.WeaponBeam).Heat = 2

	if r.pickups.Update(0.01, false) {
		t.Fatal("proximity alone must not collect")
	}
	wp, _ := r.world.Pickups.Get(id)
	if !wp.InRange || !r.pickups.PromptVisible() {
		t.Error("pickup within radius should show the prompt")
	}

	if !r.pickups.Update(0.01, true) {
		t.Fatal("interact in range should collect")
	}
	if p.Weapons.Active != types.WeaponBeam {
		t.Errorf("active: got %v, want beam", p.Weapons.Active)
	}
	beam := p.Slot(types.WeaponBeam)
	if beam.Charge != 100 || beam.Heat != 0 {
		t.Errorf("collected weapon should be reset to full: %+v", beam)
	}
	if r.world.Pickups.IsAlive(id) {
		t.Error("collected pickup should be removed")
	}
}

func TestWeaponPickupOutOfRange(t *testing.T) {
	r := newTestRig(t)
	p := r.world.Player
	id := r.pickups.Spawn(types.WeaponSpread, p.Position.X+30, p.Position.Y)

	if r.pickups.Update(0.01, true) {
		t.Error("pickup outside the radius should not be collected")
	}
	wp, _ := r.world.Pickups.Get(id)
	if wp.InRange {
		t.Error("prompt should be hidden outside the radius")
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		name  string
		kind  types.PowerUpKind
		setup func(r *testRig)
		check func(t *testing.T, r *testRig)
	}{
		{
			name:  "燃料加满",
			kind:  types.PowerUpFuel,
			setup: func(r *testRig) { r.world.Player.Jetpack.Fuel = 10 },
			check: func(t *testing.T, r *testRig) {
				if r.world.Player.Jetpack.Fuel != 100 {
					t.Errorf("fuel: got %v", r.world.Player.Jetpack.Fuel)
				}
			},
		},
		{
			name:  "散射弹药",
			kind:  types.PowerUpSpreadAmmo,
			setup: func(r *testRig) { r.world.Player.Slot(types.WeaponSpread).Ammo = 10 },
			check: func(t *testing.T, r *testRig) {
				if got := r.world.Player.Slot(types.WeaponSpread).Ammo; got != 30 {
					t.Errorf("ammo: got %d, want 30", got)
				}
			},
		},
		{
			name:  "光束能量",
			kind:  types.PowerUpBeamCharge,
			setup: func(r *testRig) { r.world.Player.Slot(types.WeaponBeam).Charge = 20 },
			check: func(t *testing.T, r *testRig) {
				if got := r.world.Player.Slot(types.WeaponBeam).Charge; got != 70 {
					t.Errorf("charge: got %v, want 70", got)
				}
			},
		},
		{
			name:  "机动升级",
			kind:  types.PowerUpMobility,
			setup: func(r *testRig) {},
			check: func(t *testing.T, r *testRig) {
				jp := r.world.Player.Jetpack
				if jp.Level != 1 || jp.Fuel != 200 {
					t.Errorf("jetpack: %+v", jp)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			tt.setup(r)
			id := r.powerUps.Spawn(tt.kind, 0, 0)
			if !r.powerUps.Collect(id) {
				t.Fatal("collect failed")
			}
			if r.powerUps.Collect(id) {
				t.Error("second collect must be a no-op")
			}
			tt.check(t, r)
		})
	}
}

func TestMobilityCappedAtMaxLevel(t *testing.T) {
	r := newTestRig(t)
	for i := 0; i < 5; i++ {
		r.powerUps.Apply(types.PowerUpMobility)
	}
	if jp := r.world.Player.Jetpack; jp.Level != 2 || !jp.Unlimited {
		t.Errorf("jetpack should cap at level 2: %+v", jp)
	}
}

func TestPowerUpDrift(t *testing.T) {
	r := newTestRig(t)
	id := r.powerUps.Spawn(types.PowerUpHealth, 50, 0)

	r.powerUps.Update(0.5)
	pu, _ := r.world.PowerUps.Get(id)
	if !approx(pu.Position.X, 40) {
		t.Errorf("x: got %v, want 40", pu.Position.X)
	}
}

func TestDamageNumbers(t *testing.T) {
	r := newTestRig(t)
	id := r.numbers.SpawnBullet(10, 0, 0)

	r.numbers.Update(0.5)
	n, ok := r.world.DamageNumbers.Get(id)
	if !ok || !approx(n.Position.Y, 5) {
		t.Fatalf("bullet number should rise: %+v", n)
	}
	r.numbers.Update(0.5)
	if r.world.DamageNumbers.IsAlive(id) {
		t.Error("bullet number should expire after 1s")
	}
}

func TestBeamNumberFollowsHandle(t *testing.T) {
	r := newTestRig(t)
	enemyID := r.spawnEnemy(types.EnemySquare, types.BehaviorSolo, 30, 0)
	e, _ := r.world.Enemies.Get(enemyID)

	first := r.numbers.AccumulateBeam(enemyID, e, 4)
	r.numbers.Update(1.0)
	second := r.numbers.AccumulateBeam(enemyID, e, 4)
	if first != second {
		t.Fatal("accumulation should reuse the enemy's damage number")
	}
	n, _ := r.world.DamageNumbers.Get(first)
	if n.Amount != 8 || n.Lifetime.Remaining != n.Lifetime.Duration {
		t.Errorf("amount %v remaining %v", n.Amount, n.Lifetime.Remaining)
	}

	// 另一个敌人在同一位置也不会共用
	otherID := r.spawnEnemy(types.EnemySquare, types.BehaviorSolo, 30, 0)
	other, _ := r.world.Enemies.Get(otherID)
	if r.numbers.AccumulateBeam(otherID, other, 4) == first {
		t.Error("damage numbers are looked up by handle, not by position")
	}
}

func TestBoundsPruning(t *testing.T) {
	r := newTestRig(t)
	cam := r.world.Camera

	gone := r.spawnEnemy(types.EnemyPentagon, types.BehaviorSolo, cam.Left-11, 0)
	kept := r.spawnEnemy(types.EnemyTriangle, types.BehaviorSolo, cam.Left-9, 0)
	r.world.Player.Position.X = cam.Left + 5
	r.enemies.Update(0.01, 1)
	e, _ := r.world.Enemies.Get(gone)
	shots := append([]ecs.EntityID(nil), e.Shots...)

	staleItem := r.powerUps.Spawn(types.PowerUpFuel, cam.Left-6, 0)
	liveItem := r.powerUps.Spawn(types.PowerUpFuel, cam.Left-4, 0)
	stalePickup := r.pickups.Spawn(types.WeaponBeam, cam.Left-11, 0)

	r.bounds.Update()

	if r.world.Enemies.IsAlive(gone) || !r.world.Enemies.IsAlive(kept) {
		t.Error("only enemies past left-10 should be pruned")
	}
	for _, id := range shots {
		if r.world.Projectiles.IsAlive(id) {
			t.Error("pruned enemy's shots should be removed")
		}
	}
	if r.world.PowerUps.IsAlive(staleItem) || !r.world.PowerUps.IsAlive(liveItem) {
		t.Error("power-ups prune at left-5")
	}
	if r.world.Pickups.IsAlive(stalePickup) {
		t.Error("pickups prune at left-10")
	}
	if r.state.Score != 0 {
		t.Error("pruning must not award score")
	}
}
