package systems

import (
	"testing"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/types"
)

func beamSlot() components.WeaponSlot {
	return components.WeaponSlot{
		Kind:             types.WeaponBeam,
		Damage:           40,
		Charge:           100,
		MaxCharge:        100,
		ChargeRate:       10,
		MaxHeat:          3,
		HeatRate:         1,
		CoolRate:         2,
		OverheatCooldown: 1,
	}
}

func TestConsumeAmmo(t *testing.T) {
	t.Run("有弹药时消耗一发", func(t *testing.T) {
		slot := components.WeaponSlot{Kind: types.WeaponSpread, Ammo: 2, MaxAmmo: 30}
		if !ConsumeAmmo(&slot) || slot.Ammo != 1 {
			t.Errorf("expected ammo 1 after consume, got %d", slot.Ammo)
		}
	})

	t.Run("弹药为零时不修改", func(t *testing.T) {
		slot := components.WeaponSlot{Kind: types.WeaponSpread, Ammo: 0, MaxAmmo: 30}
		if ConsumeAmmo(&slot) {
			t.Error("consume should fail on empty weapon")
		}
		if slot.Ammo != 0 {
			t.Errorf("ammo should stay 0, got %d", slot.Ammo)
		}
	})

	t.Run("无限弹药", func(t *testing.T) {
		slot := components.WeaponSlot{Kind: types.WeaponPrimary, UnlimitedAmmo: true}
		for i := 0; i < 100; i++ {
			if !ConsumeAmmo(&slot) {
				t.Fatal("unlimited weapon should always fire")
			}
		}
	})
}

func TestDrainCharge(t *testing.T) {
	t.Run("正常消耗", func(t *testing.T) {
		slot := beamSlot()
		got := DrainCharge(&slot, 0.5)
		if !approx(got, 5) || !approx(slot.Charge, 95) {
			t.Errorf("drained %v, charge %v; want 5, 95", got, slot.Charge)
		}
	})

	t.Run("不足时只消耗剩余部分", func(t *testing.T) {
		slot := beamSlot()
		slot.Charge = 2
		got := DrainCharge(&slot, 1)
		if !approx(got, 2) || slot.Charge != 0 {
			t.Errorf("drained %v, charge %v; want 2, 0", got, slot.Charge)
		}
	})

	t.Run("能量为零时不消耗", func(t *testing.T) {
		slot := beamSlot()
		slot.Charge = 0
		if got := DrainCharge(&slot, 1); got != 0 || slot.Charge != 0 {
			t.Errorf("drained %v, charge %v; want 0, 0", got, slot.Charge)
		}
	})
}

func TestHeatCycle(t *testing.T) {
	slot := beamSlot()

	// 每次 0.5 秒，第 6 次达到上限
	for i := 1; i <= 5; i++ {
		if AccrueHeat(&slot, 0.5) {
			t.Fatalf("overheated too early at step %d", i)
		}
	}
	if !AccrueHeat(&slot, 0.5) {
		t.Fatal("expected overheat when heat reaches max")
	}
	if !slot.Overheated || slot.Heat != slot.MaxHeat || slot.OverheatTimer != 1 {
		t.Fatalf("unexpected overheat state: %+v", slot)
	}

	// 过热期间不再积累
	if AccrueHeat(&slot, 0.5) {
		t.Error("overheated slot should not accrue heat")
	}

	// 冷却与输入无关
	if CoolWeapon(&slot, 0.5, true) {
		t.Error("cooldown should not finish after 0.5s")
	}
	if !CoolWeapon(&slot, 0.5, true) {
		t.Error("cooldown should finish after 1.0s")
	}
	if slot.Overheated || slot.Heat != 0 {
		t.Errorf("heat should reset to 0 after cooldown: %+v", slot)
	}
}

func TestHeatCycleAtFrameRate(t *testing.T) {
	const frame = 1.0 / 60
	slot := beamSlot()

	// 3 秒热量上限在第 180 帧达到
	for i := 1; i < 180; i++ {
		if AccrueHeat(&slot, frame) {
			t.Fatalf("overheated too early at frame %d", i)
		}
	}
	if !AccrueHeat(&slot, frame) {
		t.Fatalf("expected overheat at frame 180, heat %v", slot.Heat)
	}

	// 1 秒冷却在第 60 帧结束
	for i := 1; i < 60; i++ {
		if CoolWeapon(&slot, frame, true) {
			t.Fatalf("cooldown finished too early at frame %d", i)
		}
	}
	if !CoolWeapon(&slot, frame, true) {
		t.Fatalf("expected cooldown to finish at frame 60, timer %v", slot.OverheatTimer)
	}
}

func TestCoolWeaponIdle(t *testing.T) {
	slot := beamSlot()
	slot.Heat = 2

	CoolWeapon(&slot, 0.5, true)
	if slot.Heat != 2 {
		t.Errorf("heat should not decay while firing, got %v", slot.Heat)
	}

	CoolWeapon(&slot, 0.5, false)
	if !approx(slot.Heat, 1) {
		t.Errorf("heat should decay at cool rate, got %v", slot.Heat)
	}

	CoolWeapon(&slot, 5, false)
	if slot.Heat != 0 {
		t.Errorf("heat should not go negative, got %v", slot.Heat)
	}
}

func TestRefillWeapon(t *testing.T) {
	spread := components.WeaponSlot{Kind: types.WeaponSpread, Ammo: 20, MaxAmmo: 30}
	RefillWeapon(&spread, 30)
	if spread.Ammo != 30 {
		t.Errorf("ammo should clamp to 30, got %d", spread.Ammo)
	}

	beam := beamSlot()
	beam.Charge = 70
	RefillWeapon(&beam, 50)
	if beam.Charge != 100 {
		t.Errorf("charge should clamp to 100, got %v", beam.Charge)
	}

	RefillWeapon(&beam, -10)
	if beam.Charge != 100 {
		t.Errorf("negative refill should be ignored, got %v", beam.Charge)
	}
}

func TestHasResource(t *testing.T) {
	tests := []struct {
		name string
		slot components.WeaponSlot
		want bool
	}{
		{"主武器", components.WeaponSlot{Kind: types.WeaponPrimary, UnlimitedAmmo: true}, true},
		{"散射有弹", components.WeaponSlot{Kind: types.WeaponSpread, Ammo: 1}, true},
		{"散射无弹", components.WeaponSlot{Kind: types.WeaponSpread}, false},
		{"光束有能量", components.WeaponSlot{Kind: types.WeaponBeam, Charge: 0.1}, true},
		{"光束无能量", components.WeaponSlot{Kind: types.WeaponBeam}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasResource(&tt.slot); got != tt.want {
				t.Errorf("HasResource() = %v, want %v", got, tt.want)
			}
		})
	}
}
