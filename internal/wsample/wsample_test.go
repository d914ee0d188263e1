package wsample

import (
	"math/rand"
	"testing"
)

func TestUniformDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := make([]int, 4)
	const trials = 100000
	for i := 0; i < trials; i++ {
		counts[Uniform(rng, 4)]++
	}
	for _, c := range counts {
		frac := float64(c) / trials
		if frac < 0.24 || frac > 0.26 {
			t.Errorf("uniform bucket frequency out of range: %f", frac)
		}
	}
}

func TestUniformSingleton(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := Uniform(rng, 1); got != 0 {
		t.Fatalf("Uniform(1) = %d, want 0", got)
	}
}

func TestWeightedDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	w := []float64{1, 3}
	counts := make([]int, 2)
	const trials = 100000
	for i := 0; i < trials; i++ {
		counts[Weighted(rng, w)]++
	}
	got := float64(counts[1]) / float64(counts[0]+counts[1])
	if got < 0.72 || got > 0.78 {
		t.Errorf("weighted bucket 1 frequency = %f, want ~0.75", got)
	}
}

func TestWeightedZeroSlotNeverPicked(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := []float64{0, 1, 0}
	for i := 0; i < 1000; i++ {
		if got := Weighted(rng, w); got != 1 {
			t.Fatalf("Weighted picked zero-weight slot %d", got)
		}
	}
}

func TestNormalizeSumsToOne(t *testing.T) {
	out := Normalize([]float64{1, 1, 2})
	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("normalized sum = %f, want 1", sum)
	}
	if out[2] != 0.5 {
		t.Fatalf("normalized[2] = %f, want 0.5", out[2])
	}
}

func TestUniformWeightsSumToOne(t *testing.T) {
	w := UniformWeights(5)
	sum := 0.0
	for _, v := range w {
		sum += v
		if v != 0.2 {
			t.Fatalf("weight = %f, want 0.2", v)
		}
	}
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("sum = %f, want 1", sum)
	}
}

func TestFullRangeSpansSignedRange(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	sawNegative, sawPositive := false, false
	for i := 0; i < 1000; i++ {
		v := FullRange(rng)
		if v < 0 {
			sawNegative = true
		} else {
			sawPositive = true
		}
	}
	if !sawNegative || !sawPositive {
		t.Fatalf("FullRange did not span both signs: negative=%v positive=%v", sawNegative, sawPositive)
	}
}

func TestWeightedPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty weight slice")
		}
	}()
	Weighted(rand.New(rand.NewSource(1)), nil)
}
