package systems

import (
	"math/rand"
	"testing"
)

func TestWeightedIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("全零权重返回 false", func(t *testing.T) {
		if _, ok := weightedIndex(rng, []float64{0, 0, 0}); ok {
			t.Error("expected no selection")
		}
		if _, ok := weightedIndex(rng, nil); ok {
			t.Error("expected no selection for empty weights")
		}
	})

	t.Run("零权重项永不选中", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			idx, ok := weightedIndex(rng, []float64{0, 1, 0, 2})
			if !ok || idx == 0 || idx == 2 {
				t.Fatalf("got %d, %v", idx, ok)
			}
		}
	})
}

func TestSignedUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		if v := signedUnit(rng); v < -1 || v >= 1 {
			t.Fatalf("value %v outside [-1, 1)", v)
		}
	}
}
