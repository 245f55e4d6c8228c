package components

// ShieldComponent 护盾状态
// Remaining <= 0 且 Timed 为 false 表示护盾持续到被显式关闭
type ShieldComponent struct {
	Active    bool
	Timed     bool
	Remaining float64
}
