package types

import "testing"

func TestEnemyKindStringRoundTrip(t *testing.T) {
	for _, k := range AllEnemyKinds {
		got, ok := EnemyKindFromString(k.String())
		if !ok || got != k {
			t.Errorf("EnemyKindFromString(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}

	if _, ok := EnemyKindFromString("hexagon"); ok {
		t.Error("EnemyKindFromString(hexagon) should fail")
	}
	if EnemyKind(42).String() != "unknown" {
		t.Errorf("EnemyKind(42).String() = %q", EnemyKind(42).String())
	}
}

func TestBehaviorFromString(t *testing.T) {
	tests := []struct {
		in   string
		want BehaviorType
		ok   bool
	}{
		{"solo", BehaviorSolo, true},
		{"formation", BehaviorFormation, true},
		{"swarm", BehaviorSwarm, true},
		{"", BehaviorSolo, false},
	}
	for _, tt := range tests {
		got, ok := BehaviorFromString(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("BehaviorFromString(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWeaponKind(t *testing.T) {
	t.Run("字符串映射", func(t *testing.T) {
		for _, w := range AllWeaponKinds {
			got, ok := WeaponKindFromString(w.String())
			if !ok || got != w {
				t.Errorf("WeaponKindFromString(%q) = %v, %v", w.String(), got, ok)
			}
		}
	})

	t.Run("槽位范围", func(t *testing.T) {
		if !WeaponBeam.Valid() {
			t.Error("WeaponBeam should be valid")
		}
		if WeaponKind(3).Valid() || WeaponKind(-1).Valid() {
			t.Error("out of range weapon kinds should be invalid")
		}
	})
}

func TestPowerUpKindFromString(t *testing.T) {
	for _, p := range AllPowerUpKinds {
		got, ok := PowerUpKindFromString(p.String())
		if !ok || got != p {
			t.Errorf("PowerUpKindFromString(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := PowerUpKindFromString("shield"); ok {
		t.Error("PowerUpKindFromString(shield) should fail")
	}
}
