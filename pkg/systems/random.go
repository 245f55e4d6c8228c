package systems

import "math/rand"

// weightedIndex 按权重随机选择下标
// 抽取 U(0, total)，依次减去权重，返回第一个满足 r < weight 的下标
// 总权重为 0 或浮点误差导致未命中时返回 false，由调用方使用默认值
func weightedIndex(rng *rand.Rand, weights []float64) (int, bool) {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, false
	}

	r := rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i, true
		}
		r -= w
	}
	return 0, false
}

// signedUnit 返回 U(-1, 1)
func signedUnit(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}
