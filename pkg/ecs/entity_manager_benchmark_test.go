package ecs

import "testing"

type benchmarkProjectile struct {
	X, Y   float64
	VX, VY float64
	Damage float64
}

// setupBenchmarkArena 创建指定数量的实体
func setupBenchmarkArena(count int) *Arena[benchmarkProjectile] {
	arena := NewArena[benchmarkProjectile](count)
	for i := 0; i < count; i++ {
		arena.Create(benchmarkProjectile{X: float64(i), VX: 200})
	}
	return arena
}

func BenchmarkArenaEach(b *testing.B) {
	arena := setupBenchmarkArena(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arena.Each(func(_ EntityID, p *benchmarkProjectile) {
			p.X += p.VX * 0.016
		})
	}
}

func BenchmarkArenaIDsAndGet(b *testing.B) {
	arena := setupBenchmarkArena(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, id := range arena.IDs() {
			if p, ok := arena.Get(id); ok {
				p.Y += 0.1
			}
		}
	}
}

// BenchmarkArenaChurn 模拟每帧生成并清理弹丸
func BenchmarkArenaChurn(b *testing.B) {
	arena := setupBenchmarkArena(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ids := arena.IDs()
		for j := 0; j < len(ids); j += 4 {
			arena.DestroyEntity(ids[j])
		}
		arena.RemoveMarkedEntities()
		for j := 0; j < 50; j++ {
			arena.Create(benchmarkProjectile{VX: 200})
		}
	}
}
