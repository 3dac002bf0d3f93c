package geometry

import (
	"math"
	"testing"
)

func TestDirectionInverse(t *testing.T) {
	cases := map[Direction]Direction{North: South, South: North, East: West, West: East}
	for d, want := range cases {
		if got := d.Inverse(); got != want {
			t.Errorf("%v.Inverse() = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionVectorMatchesCompass(t *testing.T) {
	if North.Vector() != (Vec3{0, -1, 0}) {
		t.Errorf("North vector wrong: %v", North.Vector())
	}
	if East.Vector() != (Vec3{1, 0, 0}) {
		t.Errorf("East vector wrong: %v", East.Vector())
	}
}

func TestDirectionTurns(t *testing.T) {
	if North.TurnRight() != East {
		t.Errorf("North.TurnRight() = %v, want East", North.TurnRight())
	}
	if North.TurnLeft() != West {
		t.Errorf("North.TurnLeft() = %v, want West", North.TurnLeft())
	}
}

func TestDistSquaredMatchesDist(t *testing.T) {
	a := Point{0, 0, 0}
	b := Point{3, 4, 0}
	if d := Dist(a, b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %f, want 5", d)
	}
	if ds := DistSquared(a, b); ds != 25 {
		t.Errorf("DistSquared = %f, want 25", ds)
	}
}

func TestPointRound(t *testing.T) {
	p := Point{X: 1.5, Y: -1.5, Z: 2.4}
	v := p.Round()
	if v != (Vec3{X: 2, Y: -2, Z: 2}) {
		t.Errorf("Round() = %v", v)
	}
}

func TestBoxIntersectsHalfOpen(t *testing.T) {
	a := Box{Min: Vec3{0, 0, 0}, Size: Vec3{2, 2, 2}}
	touching := Box{Min: Vec3{2, 0, 0}, Size: Vec3{2, 2, 2}}
	if a.Intersects(touching) {
		t.Error("half-open boxes sharing only a face should not intersect")
	}
	overlapping := Box{Min: Vec3{1, 0, 0}, Size: Vec3{2, 2, 2}}
	if !a.Intersects(overlapping) {
		t.Error("overlapping boxes should intersect")
	}
}

func TestBoxInflatedIsMinSideOnly(t *testing.T) {
	a := Box{Min: Vec3{5, 5, 0}, Size: Vec3{2, 2, 1}}
	inflated := a.Inflated(1, 0)
	if inflated.Min != (Vec3{4, 4, 0}) {
		t.Errorf("inflated min = %v, want {4,4,0}", inflated.Min)
	}
	if inflated.Max() != a.Max() {
		t.Errorf("inflated max changed: got %v, want %v", inflated.Max(), a.Max())
	}
}

func TestBoxInsideExtent(t *testing.T) {
	extent := Vec3{10, 10, 10}
	inside := Box{Min: Vec3{0, 0, 0}, Size: Vec3{10, 10, 10}}
	if !inside.InsideExtent(extent) {
		t.Error("box exactly filling extent should be inside")
	}
	outside := Box{Min: Vec3{-1, 0, 0}, Size: Vec3{2, 2, 2}}
	if outside.InsideExtent(extent) {
		t.Error("box with negative min should be outside extent")
	}
}
