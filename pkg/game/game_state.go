package game

import "log"

// GameState 存储一局游戏的全局状态
// 分数、暂停与结束标志，以及面向外部协作方的生命周期事件
type GameState struct {
	Score    int // 当前分数
	Kills    int // 本局击杀数
	Paused   bool
	GameOver bool

	// OnScoreChanged 分数变化时回调，参数为当前总分
	OnScoreChanged func(total int)
	// OnGameOver 游戏结束时回调一次，参数为最终分数
	OnGameOver func(finalScore int)
}

// NewGameState 创建初始状态
func NewGameState() *GameState {
	return &GameState{}
}

// AddScore 增加分数并通知监听者
// amount <= 0 时忽略
func (gs *GameState) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	gs.Score += amount
	if gs.OnScoreChanged != nil {
		gs.OnScoreChanged(gs.Score)
	}
}

// GetScore 返回当前分数
func (gs *GameState) GetScore() int {
	return gs.Score
}

// AddKill 记录一次击杀
func (gs *GameState) AddKill() {
	gs.Kills++
}

// SetPaused 设置暂停状态
func (gs *GameState) SetPaused(paused bool) {
	gs.Paused = paused
}

// TriggerGameOver 进入游戏结束状态
// 只有第一次调用会触发 OnGameOver，返回是否为首次触发
func (gs *GameState) TriggerGameOver() bool {
	if gs.GameOver {
		return false
	}
	gs.GameOver = true
	log.Printf("[GameState] Game over, final score %d", gs.Score)
	if gs.OnGameOver != nil {
		gs.OnGameOver(gs.Score)
	}
	return true
}

// Reset 恢复初始状态并通知分数归零，保留监听者
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.Kills = 0
	gs.Paused = false
	gs.GameOver = false
	if gs.OnScoreChanged != nil {
		gs.OnScoreChanged(0)
	}
}
