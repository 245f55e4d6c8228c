// Package types 定义共享的基础类型
package types

// EnemyKind 定义敌人的形状种类
// 种类决定基础血量、尺寸、速度、接触伤害和分值
type EnemyKind int

const (
	EnemyTriangle EnemyKind = iota // 三角形：快速、脆弱
	EnemySquare                    // 正方形：中等
	EnemyCircle                    // 圆形：死亡时分裂
	EnemyPentagon                  // 五边形：会射击
)

// AllEnemyKinds 按权重表顺序列出所有敌人种类
// 加权随机选择时按此顺序累加权重
var AllEnemyKinds = []EnemyKind{EnemyTriangle, EnemySquare, EnemyCircle, EnemyPentagon}

// BehaviorType 定义敌人的移动行为
type BehaviorType int

const (
	BehaviorSolo      BehaviorType = iota // 单体追踪
	BehaviorFormation                     // 编队
	BehaviorSwarm                         // 蜂群
)

// AllBehaviors 按权重顺序列出所有出怪模式
var AllBehaviors = []BehaviorType{BehaviorSolo, BehaviorFormation, BehaviorSwarm}

// FormationShape 编队形状
type FormationShape int

const (
	FormationV    FormationShape = iota // V 字形（刚性，垂直速度为 0）
	FormationSine                       // 正弦波形
)

var enemyKindStringMap = map[EnemyKind]string{
	EnemyTriangle: "triangle",
	EnemySquare:   "square",
	EnemyCircle:   "circle",
	EnemyPentagon: "pentagon",
}

var behaviorStringMap = map[BehaviorType]string{
	BehaviorSolo:      "solo",
	BehaviorFormation: "formation",
	BehaviorSwarm:     "swarm",
}

var formationShapeStringMap = map[FormationShape]string{
	FormationV:    "v",
	FormationSine: "sine",
}

var (
	stringToEnemyKindMap map[string]EnemyKind
	stringToBehaviorMap  map[string]BehaviorType
)

func init() {
	stringToEnemyKindMap = make(map[string]EnemyKind, len(enemyKindStringMap))
	for k, s := range enemyKindStringMap {
		stringToEnemyKindMap[s] = k
	}
	stringToBehaviorMap = make(map[string]BehaviorType, len(behaviorStringMap))
	for b, s := range behaviorStringMap {
		stringToBehaviorMap[s] = b
	}
}

// String 返回敌人种类的配置字符串表示（用于配置文件匹配）
func (k EnemyKind) String() string {
	if s, ok := enemyKindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// EnemyKindFromString 将配置字符串转换为 EnemyKind
func EnemyKindFromString(s string) (EnemyKind, bool) {
	k, ok := stringToEnemyKindMap[s]
	return k, ok
}

// String 返回行为类型的配置字符串表示
func (b BehaviorType) String() string {
	if s, ok := behaviorStringMap[b]; ok {
		return s
	}
	return "unknown"
}

// BehaviorFromString 将配置字符串转换为 BehaviorType
func BehaviorFromString(s string) (BehaviorType, bool) {
	b, ok := stringToBehaviorMap[s]
	return b, ok
}

// String 返回编队形状名称
func (f FormationShape) String() string {
	if s, ok := formationShapeStringMap[f]; ok {
		return s
	}
	return "unknown"
}
