package systems

import (
	"github.com/decker502/jetstrike/pkg/components"
)

// AdvanceLifetime 推进倒计时寿命
// 剩余时间归零的那一帧置为过期并返回 true，之后不再重复返回 true
func AdvanceLifetime(l *components.LifetimeComponent, dt float64) bool {
	if l.Expired {
		return false
	}
	l.Remaining -= dt
	if l.Remaining <= 0 {
		l.Remaining = 0
		l.Expired = true
		return true
	}
	return false
}

// ResetLifetime 将寿命恢复到完整时长
func ResetLifetime(l *components.LifetimeComponent) {
	l.Remaining = l.Duration
	l.Expired = false
}
