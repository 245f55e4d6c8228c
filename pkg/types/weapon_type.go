package types

// WeaponKind 武器种类，同时也是武器槽位索引
type WeaponKind int

const (
	WeaponPrimary WeaponKind = iota // 主武器：无限弹药
	WeaponSpread                    // 散射：消耗弹药
	WeaponBeam                      // 光束：消耗能量并积累热量
)

// WeaponSlotCount 玩家武器槽位数量
const WeaponSlotCount = 3

// AllWeaponKinds 所有武器种类
var AllWeaponKinds = []WeaponKind{WeaponPrimary, WeaponSpread, WeaponBeam}

// PowerUpKind 道具种类
type PowerUpKind int

const (
	PowerUpHealth     PowerUpKind = iota // 恢复生命
	PowerUpFuel                          // 加满燃料
	PowerUpSpreadAmmo                    // 散射弹药
	PowerUpBeamCharge                    // 光束能量
	PowerUpMobility                      // 喷气背包升级
)

// AllPowerUpKinds 按掉落权重表顺序列出所有道具种类
var AllPowerUpKinds = []PowerUpKind{PowerUpHealth, PowerUpFuel, PowerUpSpreadAmmo, PowerUpBeamCharge, PowerUpMobility}

// ProjectileOwner 弹丸归属方
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

var weaponKindStringMap = map[WeaponKind]string{
	WeaponPrimary: "primary",
	WeaponSpread:  "spread",
	WeaponBeam:    "beam",
}

var powerUpKindStringMap = map[PowerUpKind]string{
	PowerUpHealth:     "health",
	PowerUpFuel:       "fuel",
	PowerUpSpreadAmmo: "spreadAmmo",
	PowerUpBeamCharge: "beamCharge",
	PowerUpMobility:   "mobility",
}

// String 返回武器种类的配置字符串表示
func (w WeaponKind) String() string {
	if s, ok := weaponKindStringMap[w]; ok {
		return s
	}
	return "unknown"
}

// Valid 判断武器种类是否在槽位范围内
func (w WeaponKind) Valid() bool {
	return w >= WeaponPrimary && int(w) < WeaponSlotCount
}

// WeaponKindFromString 将配置字符串转换为 WeaponKind
func WeaponKindFromString(s string) (WeaponKind, bool) {
	for k, name := range weaponKindStringMap {
		if name == s {
			return k, true
		}
	}
	return WeaponPrimary, false
}

// String 返回道具种类的配置字符串表示
func (p PowerUpKind) String() string {
	if s, ok := powerUpKindStringMap[p]; ok {
		return s
	}
	return "unknown"
}

// PowerUpKindFromString 将配置字符串转换为 PowerUpKind
func PowerUpKindFromString(s string) (PowerUpKind, bool) {
	for k, name := range powerUpKindStringMap {
		if name == s {
			return k, true
		}
	}
	return PowerUpHealth, false
}
