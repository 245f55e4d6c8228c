package components

// EnvironmentComponent 昼夜与生物群系时钟
type EnvironmentComponent struct {
	// 昼夜
	IsNight            bool
	CycleTimer         float64 // 距上次昼夜切换的时间（秒）
	CycleDuration      float64
	Transitioning      bool
	TransitionProgress float64 // 0..1，仅供表现层插值
	TransitionSpeed    float64

	// 生物群系
	Biome         int
	BiomeCount    int
	BiomeTimer    float64
	BiomeInterval float64
}
