package systems

import (
	"log"

	"github.com/decker502/jetstrike/pkg/components"
	"github.com/decker502/jetstrike/pkg/config"
	"github.com/decker502/jetstrike/pkg/game"
)

// ComboSystem 连击计数与连击奖励
//
// 每次有效命中（子弹或光束）连击数 +1 并清零计时；
// 第二次及以后的命中奖励 BonusPerHit * (count - 1) 分；
// 计时达到超时或玩家受到伤害时连击归零
type ComboSystem struct {
	state *game.GameState
	cfg   config.ComboConfig
	combo components.ComboComponent
}

// NewComboSystem 创建连击系统
func NewComboSystem(state *game.GameState, cfg config.ComboConfig) *ComboSystem {
	return &ComboSystem{
		state: state,
		cfg:   cfg,
		combo: components.ComboComponent{Timeout: cfg.Timeout},
	}
}

// RegisterHit 记录一次有效命中
//
// 返回:
//   - int: 本次命中获得的连击奖励分
func (s *ComboSystem) RegisterHit() int {
	c := &s.combo
	c.Count++
	c.SinceLastHit = 0
	if c.Count > c.BestCount {
		c.BestCount = c.Count
	}

	if c.Count <= 1 {
		return 0
	}
	bonus := s.cfg.BonusPerHit * (c.Count - 1)
	s.state.AddScore(bonus)
	return bonus
}

// Break 玩家受伤时打断连击
func (s *ComboSystem) Break() {
	if s.combo.Count > 1 {
		log.Printf("[ComboSystem] combo x%d broken", s.combo.Count)
	}
	s.combo.Count = 0
	s.combo.SinceLastHit = 0
}

// Update 推进连击计时，超时后归零
func (s *ComboSystem) Update(dt float64) {
	c := &s.combo
	if c.Count == 0 {
		return
	}
	c.SinceLastHit += dt
	if c.SinceLastHit >= c.Timeout-timeEpsilon {
		c.Count = 0
		c.SinceLastHit = 0
	}
}

// Reset 新开一局时清空连击（包括本局最高连击）
func (s *ComboSystem) Reset() {
	s.combo = components.ComboComponent{Timeout: s.cfg.Timeout}
}

// Count 当前连击数
func (s *ComboSystem) Count() int {
	return s.combo.Count
}

// Best 本局最高连击
func (s *ComboSystem) Best() int {
	return s.combo.BestCount
}

// SinceLastHit 距上次命中的时间
func (s *ComboSystem) SinceLastHit() float64 {
	return s.combo.SinceLastHit
}
