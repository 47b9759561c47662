package light

import (
	"math/rand"
	"testing"

	"chosenoffset.com/lightkeeper/internal/dice"
)

func testParams() Params {
	return Params{
		SpawnProbability: 1,
		SpawnAngleMin:    40,
		SpawnAngleMax:    150,
		InitialRadius:    8,
		GrowthRadius:     5,
		GrowthOffset:     2,
		EndRadius:        40,
	}
}

func newTestRoller() *dice.Roller {
	return dice.NewRoller(rand.New(rand.NewSource(1)))
}

func TestArmsAtNegatedAngleInRange(t *testing.T) {
	roller := newTestRoller()
	for i := 0; i < 100; i++ {
		c := NewController(testParams())
		c.OnMinuteTick(roller)
		if !c.Armed() {
			t.Fatal("spawn probability 1 must arm on the first tick")
		}
		if c.Angle() > -40 || c.Angle() < -150 {
			t.Fatalf("armed angle %v outside [-150, -40]", c.Angle())
		}
	}
}

func TestNeverArmsAtZeroProbability(t *testing.T) {
	params := testParams()
	params.SpawnProbability = 0
	c := NewController(params)
	roller := newTestRoller()
	for i := 0; i < 1000; i++ {
		c.OnMinuteTick(roller)
	}
	if c.Armed() {
		t.Error("spawn probability 0 must never arm")
	}
}

func TestGrowthAfterArming(t *testing.T) {
	c := NewController(testParams())
	roller := newTestRoller()

	c.OnMinuteTick(roller)
	if !c.Armed() {
		t.Fatal("expected armed light")
	}
	angle := c.Angle()

	// Subsequent ticks only grow the existing light; the angle never
	// changes and no second light appears.
	for i := 1; i <= 3; i++ {
		c.OnMinuteTick(roller)
		if c.Angle() != angle {
			t.Fatalf("tick %d changed the armed angle from %v to %v", i, angle, c.Angle())
		}
		wantRadius := 8 + float64(i)*5
		if c.Radius() != wantRadius {
			t.Errorf("tick %d: expected radius %v, got %v", i, wantRadius, c.Radius())
		}
		wantOffset := float64(i) * 2
		if c.VerticalOffset() != wantOffset {
			t.Errorf("tick %d: expected offset %v, got %v", i, wantOffset, c.VerticalOffset())
		}
	}
}

func TestBreachThreshold(t *testing.T) {
	c := NewController(testParams())
	roller := newTestRoller()

	if c.Breached() {
		t.Fatal("a dormant light must not be breached")
	}
	c.OnMinuteTick(roller) // arm, radius 8
	for i := 0; i < 6; i++ {
		if c.Breached() {
			t.Fatalf("breached early at radius %v", c.Radius())
		}
		c.OnMinuteTick(roller)
	}
	// 8 + 6*5 = 38; the seventh growth tick crosses the threshold.
	if c.Radius() != 38 {
		t.Fatalf("expected radius 38 before breach, got %v", c.Radius())
	}
	c.OnMinuteTick(roller)
	if !c.Breached() {
		t.Errorf("expected breach at radius %v", c.Radius())
	}
}

func TestResetIdempotence(t *testing.T) {
	c := NewController(testParams())
	roller := newTestRoller()
	c.OnMinuteTick(roller)
	c.OnMinuteTick(roller)

	c.Reset()
	first := *c
	c.Reset()
	if *c != first {
		t.Error("Reset twice must equal Reset once")
	}
	if c.Armed() || c.Radius() != 8 || c.VerticalOffset() != 0 {
		t.Errorf("Reset did not restore initial state: %+v", c)
	}
}
