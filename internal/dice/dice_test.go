package dice

import (
	"math/rand"
	"testing"
)

func newTestRoller() *Roller {
	return NewRoller(rand.New(rand.NewSource(1)))
}

func TestChanceExtremes(t *testing.T) {
	r := newTestRoller()
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
}

func TestChanceIsRoughlyCalibrated(t *testing.T) {
	r := newTestRoller()
	hits := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if r.Chance(0.1) {
			hits++
		}
	}
	// Loose bounds; the point is catching an inverted comparison, not
	// auditing the generator.
	if hits < trials/20 || hits > trials/5 {
		t.Errorf("Chance(0.1) hit %d of %d trials", hits, trials)
	}
}

func TestIntBetweenBounds(t *testing.T) {
	r := newTestRoller()
	seenLo, seenHi := false, false
	for i := 0; i < 10000; i++ {
		v := r.IntBetween(30, 150)
		if v < 30 || v > 150 {
			t.Fatalf("IntBetween(30, 150) returned %d", v)
		}
		if v == 30 {
			seenLo = true
		}
		if v == 150 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Error("inclusive bounds were never drawn")
	}
}

func TestIntBetweenDegenerate(t *testing.T) {
	r := newTestRoller()
	if v := r.IntBetween(5, 5); v != 5 {
		t.Errorf("IntBetween(5, 5): expected 5, got %d", v)
	}
	if v := r.IntBetween(7, 3); v != 7 {
		t.Errorf("IntBetween(7, 3): expected lo, got %d", v)
	}
}
