package mission

import (
	"testing"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
	"github.com/dshills/dungeon3d/pkg/identifier"
	"github.com/dshills/dungeon3d/pkg/rng"
)

// chain builds n rooms connected in a straight line (0-1-2-...-n-1), with
// depth/branch assigned as if room 0 were the start, so mission tests can
// run without depending on pkg/graph's full semantics pipeline. Room 0 is
// marked Start, the last room Goal, and every room in between Hall, mirroring
// the Parts AssignParts would have already set by the time Place runs.
func chain(n int) ([]*graph.Room, []*graph.Aisle) {
	alloc := identifier.NewAllocator()
	rooms := make([]*graph.Room, n)
	for i := range rooms {
		rooms[i] = graph.NewRoom(alloc, geometry.Vec3{X: i * 5}, geometry.Vec3{X: 2, Y: 2, Z: 2})
		rooms[i].DepthFromStart = uint8(i)
		rooms[i].Parts = graph.Hall
	}
	rooms[0].Parts = graph.Start
	rooms[n-1].Parts = graph.Goal
	var aisles []*graph.Aisle
	for i := 0; i+1 < n; i++ {
		a := graph.NewAisle(alloc,
			graph.Vertex{Point: rooms[i].GroundCenter(), Room: rooms[i]},
			graph.Vertex{Point: rooms[i+1].GroundCenter(), Room: rooms[i+1]})
		aisles = append(aisles, a)
	}
	return rooms, aisles
}

func TestPlaceLocksAtLeastOneEdge(t *testing.T) {
	rooms, aisles := chain(6)
	goal := rooms[len(rooms)-1]
	r := rng.NewRNG(1)

	Place(r, rooms, aisles, goal)

	locked := 0
	uniqueLocked := 0
	for _, a := range aisles {
		if a.Locked() {
			locked++
		}
		if a.UniqueLocked() {
			uniqueLocked++
		}
	}
	if locked == 0 {
		t.Fatal("expected at least one locked aisle")
	}
	if uniqueLocked != 1 {
		t.Errorf("expected exactly one unique-locked aisle, got %d", uniqueLocked)
	}
}

func TestPlaceAssignsAKey(t *testing.T) {
	rooms, aisles := chain(6)
	goal := rooms[len(rooms)-1]
	r := rng.NewRNG(2)

	Place(r, rooms, aisles, goal)

	keys := 0
	for _, rm := range rooms {
		if rm.Item != graph.Empty {
			keys++
		}
	}
	if keys == 0 {
		t.Fatal("expected at least one room to receive a key")
	}
}

func TestPlaceIsDeterministic(t *testing.T) {
	rooms1, aisles1 := chain(8)
	rooms2, aisles2 := chain(8)

	Place(rng.NewRNG(99), rooms1, aisles1, rooms1[len(rooms1)-1])
	Place(rng.NewRNG(99), rooms2, aisles2, rooms2[len(rooms2)-1])

	for i := range rooms1 {
		if rooms1[i].Item != rooms2[i].Item {
			t.Fatalf("room %d item differs: %v vs %v", i, rooms1[i].Item, rooms2[i].Item)
		}
	}
	for i := range aisles1 {
		if aisles1[i].Locked() != aisles2[i].Locked() || aisles1[i].UniqueLocked() != aisles2[i].UniqueLocked() {
			t.Fatalf("aisle %d lock state differs", i)
		}
	}
}

func TestPlaceOnSingleEdgeGraphDoesNotPanic(t *testing.T) {
	rooms, aisles := chain(2)
	r := rng.NewRNG(3)
	Place(r, rooms, aisles, rooms[1])
}

// TestPlaceNeverOverwritesAPlacedItem reproduces the scenario where a later
// iteration's reachable-room pool still contains a room an earlier iteration
// already itemed: the unique key must survive untouched by any later
// generic-key placement, across many seeds.
func TestPlaceNeverOverwritesAPlacedItem(t *testing.T) {
	for seed := uint32(1); seed <= 200; seed++ {
		rooms, aisles := chain(6)
		goal := rooms[len(rooms)-1]
		Place(rng.NewRNG(seed), rooms, aisles, goal)

		uniqueKeys := 0
		for _, rm := range rooms {
			if rm.Item == graph.UniqueKey {
				uniqueKeys++
			}
		}
		if uniqueKeys > 1 {
			t.Fatalf("seed %d: expected at most one unique key, got %d", seed, uniqueKeys)
		}
		uniqueLocks := 0
		for _, a := range aisles {
			if a.UniqueLocked() {
				uniqueLocks++
			}
		}
		if uniqueKeys != uniqueLocks {
			t.Fatalf("seed %d: %d unique-locked aisles but %d unique keys survived", seed, uniqueLocks, uniqueKeys)
		}
	}
}

// TestPlaceNeverItemsStartOrGoal mirrors FindByRoute's exclusion of the
// start and goal rooms from key placement.
func TestPlaceNeverItemsStartOrGoal(t *testing.T) {
	for seed := uint32(1); seed <= 200; seed++ {
		rooms, aisles := chain(6)
		goal := rooms[len(rooms)-1]
		Place(rng.NewRNG(seed), rooms, aisles, goal)

		for _, rm := range rooms {
			if (rm.Parts == graph.Start || rm.Parts == graph.Goal) && rm.Item != graph.Empty {
				t.Fatalf("seed %d: room with Parts %v holds item %v", seed, rm.Parts, rm.Item)
			}
		}
	}
}
