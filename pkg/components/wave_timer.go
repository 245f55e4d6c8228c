package components

// WaveTimerComponent 出怪计时器组件
// 存储出怪计时状态，供 WaveSpawnSystem 使用
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type WaveTimerComponent struct {
	// Timer 距上一波的累计时间（秒）
	// 达到当前难度下的出怪间隔时触发一波并归零
	Timer float64

	// WavesSpawned 本局已生成的波次数
	WavesSpawned int

	// EnemiesSpawned 本局已生成的敌人总数（不含分裂产生的子体）
	EnemiesSpawned int

	// LastInterval 最近一次计算的出怪间隔（调试用）
	LastInterval float64
}
