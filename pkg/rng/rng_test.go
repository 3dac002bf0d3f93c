package rng

import (
	"testing"

	"pgregory.net/rapid"
)

func TestNewRNGZeroSeedIsReplaced(t *testing.T) {
	r := NewRNG(0)
	if r.x == 0 {
		t.Fatalf("zero seed was not replaced")
	}
}

func TestDeterministicSequence(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)
	for i := 0; i < 100; i++ {
		av, bv := a.Uint32(), b.Uint32()
		if av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestIntnRange(t *testing.T) {
	r := NewRNG(42)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) out of range: %d", v)
		}
	}
}

func TestIntnPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewRNG(1).Intn(0)
}

func TestIntRangeInclusive(t *testing.T) {
	r := NewRNG(7)
	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		v := r.IntRange(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("IntRange(3,5) out of bounds: %d", v)
		}
		if v == 3 {
			seenMin = true
		}
		if v == 5 {
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Fatalf("IntRange(3,5) did not reach both endpoints: min=%v max=%v", seenMin, seenMax)
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	if v := NewRNG(1).IntRange(4, 4); v != 4 {
		t.Fatalf("IntRange(4,4) = %d, want 4", v)
	}
}

func TestFloat64Bounds(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() out of [0,1): %f", v)
		}
	}
}

func TestSignIsPlusOrMinusOne(t *testing.T) {
	r := NewRNG(5)
	for i := 0; i < 200; i++ {
		s := r.Sign()
		if s != -1 && s != 1 {
			t.Fatalf("Sign() = %d, want -1 or 1", s)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := NewRNG(17)
	n := 20
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	r.Shuffle(n, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	seen := make(map[int]bool, n)
	for _, v := range vals {
		seen[v] = true
	}
	if len(seen) != n {
		t.Fatalf("shuffle lost elements: %v", vals)
	}
}

func TestDrawLotsEmpty(t *testing.T) {
	if i := NewRNG(1).DrawLots(0, func(int) int { return 1 }); i != -1 {
		t.Fatalf("DrawLots(0, ...) = %d, want -1", i)
	}
}

func TestDrawLotsRespectsWeight(t *testing.T) {
	r := NewRNG(3)
	weights := []int{0, 100}
	counts := [2]int{}
	for i := 0; i < 2000; i++ {
		idx := r.DrawLots(len(weights), func(i int) int { return weights[i] })
		counts[idx]++
	}
	if counts[1] <= counts[0] {
		t.Fatalf("heavier weight did not dominate: counts=%v", counts)
	}
}

func TestDeriveSeedIsDeterministicPerAttempt(t *testing.T) {
	s1 := DeriveSeed(42, 1)
	s2 := DeriveSeed(42, 1)
	if s1 != s2 {
		t.Fatalf("DeriveSeed not deterministic: %d != %d", s1, s2)
	}
	if DeriveSeed(42, 1) == DeriveSeed(42, 2) {
		t.Fatalf("different attempts derived the same seed")
	}
}

// TestPropertySameSeedSameSequence checks the determinism invariant
// (spec.md Testable Property 1, at the RNG layer) across arbitrary seeds
// and draw counts.
func TestPropertySameSeedSameSequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint32().Draw(t, "seed")
		draws := rapid.IntRange(1, 50).Draw(t, "draws")

		a := NewRNG(seed)
		b := NewRNG(seed)
		for i := 0; i < draws; i++ {
			if a.Uint32() != b.Uint32() {
				t.Fatalf("sequences diverged at draw %d for seed %d", i, seed)
			}
		}
	})
}

func TestPerlinNoiseBounded(t *testing.T) {
	p := NewPerlin(NewRNG(55))
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 1.1
		z := float64(i) * 0.08
		n := p.Noise(x, y, z)
		if n < -1.5 || n > 1.5 {
			t.Fatalf("Noise(%f,%f,%f) = %f, expected roughly within [-1,1]", x, y, z, n)
		}
	}
}

func TestPerlinVerticalBiasBounded(t *testing.T) {
	p := NewPerlin(NewRNG(21))
	for i := 0; i < 200; i++ {
		v := p.VerticalBias(float64(i)*0.5, float64(i)*0.25, float64(i)*0.1)
		if v < 0 || v > 1 {
			t.Fatalf("VerticalBias out of [0,1]: %f", v)
		}
	}
}

func TestPerlinDeterministicGivenSameRNGSeed(t *testing.T) {
	a := NewPerlin(NewRNG(900))
	b := NewPerlin(NewRNG(900))
	for i := 0; i < 50; i++ {
		x, y, z := float64(i)*0.3, float64(i)*0.2, float64(i)*0.1
		if a.Noise(x, y, z) != b.Noise(x, y, z) {
			t.Fatalf("perlin noise diverged at sample %d", i)
		}
	}
}
