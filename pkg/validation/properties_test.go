package validation

import (
	"context"
	"testing"

	"github.com/dshills/dungeon3d/pkg/dungeon"
	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
	"github.com/dshills/dungeon3d/pkg/identifier"
	"github.com/dshills/dungeon3d/pkg/voxel"
)

// chain builds n rooms at distinct, non-overlapping positions along the X
// axis, connected start-to-end by a tree of aisles, and marks the first
// and last as Start/Goal.
func chain(n int) ([]*graph.Room, []*graph.Aisle) {
	alloc := identifier.NewAllocator()
	rooms := make([]*graph.Room, n)
	for i := range rooms {
		rooms[i] = graph.NewRoom(alloc, geometry.Vec3{X: i * 4}, geometry.Vec3{X: 2, Y: 2, Z: 2})
	}
	verts := graph.VerticesFromRooms(rooms)
	aisles := make([]*graph.Aisle, 0, n-1)
	for i := 0; i < n-1; i++ {
		a := graph.NewAisle(alloc, verts[i], verts[i+1])
		aisles = append(aisles, a)
	}
	if n > 0 {
		rooms[0].Parts = graph.Start
		rooms[n-1].Parts = graph.Goal
	}
	return rooms, aisles
}

func voxelGridForTest() *voxel.Grid {
	return voxel.NewGrid(geometry.Vec3{X: 8, Y: 8, Z: 4})
}

func TestCheckNoOverlapsDetectsOverlap(t *testing.T) {
	alloc := identifier.NewAllocator()
	a := graph.NewRoom(alloc, geometry.Vec3{X: 0}, geometry.Vec3{X: 4, Y: 4, Z: 2})
	b := graph.NewRoom(alloc, geometry.Vec3{X: 2}, geometry.Vec3{X: 4, Y: 4, Z: 2})

	artifact := &dungeon.Artifact{Rooms: []*graph.Room{a, b}}
	result := CheckNoOverlaps(artifact)
	if result.Satisfied {
		t.Fatal("expected overlap to be detected")
	}
}

func TestCheckNoOverlapsAcceptsDisjointRooms(t *testing.T) {
	rooms, _ := chain(5)
	artifact := &dungeon.Artifact{Rooms: rooms}
	if result := CheckNoOverlaps(artifact); !result.Satisfied {
		t.Fatalf("expected no overlaps, got: %s", result.Details)
	}
}

func TestCheckCanonicalOriginRejectsNegativeCoordinate(t *testing.T) {
	alloc := identifier.NewAllocator()
	r := graph.NewRoom(alloc, geometry.Vec3{X: -1}, geometry.Vec3{X: 2, Y: 2, Z: 2})
	artifact := &dungeon.Artifact{Rooms: []*graph.Room{r}}
	if result := CheckCanonicalOrigin(artifact); result.Satisfied {
		t.Fatal("expected negative coordinate to fail canonical-origin check")
	}
}

func TestCheckCanonicalOriginAcceptsOriginAnchoredRooms(t *testing.T) {
	rooms, _ := chain(3)
	artifact := &dungeon.Artifact{Rooms: rooms}
	if result := CheckCanonicalOrigin(artifact); !result.Satisfied {
		t.Fatalf("expected origin-anchored rooms to pass, got: %s", result.Details)
	}
}

func TestCheckReachabilityDetectsDisconnectedRoom(t *testing.T) {
	rooms, aisles := chain(4)
	// Drop the last aisle, stranding the final room.
	aisles = aisles[:len(aisles)-1]
	artifact := &dungeon.Artifact{Rooms: rooms, Aisles: aisles}
	if result := CheckReachability(artifact); result.Satisfied {
		t.Fatal("expected a stranded room to fail reachability")
	}
}

func TestCheckReachabilityAcceptsFullChain(t *testing.T) {
	rooms, aisles := chain(6)
	artifact := &dungeon.Artifact{Rooms: rooms, Aisles: aisles}
	if result := CheckReachability(artifact); !result.Satisfied {
		t.Fatalf("expected a fully connected chain to pass, got: %s", result.Details)
	}
}

func TestCheckMSTCorrectnessFailsOnWrongTreeCount(t *testing.T) {
	rooms, aisles := chain(5)
	// None of the aisles built by NewAisle are flagged as tree edges by
	// default (that flag is set by graph.BuildAisles), so this should fail.
	artifact := &dungeon.Artifact{Rooms: rooms, Aisles: aisles}
	if result := CheckMSTCorrectness(artifact); result.Satisfied {
		t.Fatal("expected untagged aisles to fail the MST tree-count check")
	}
}

func TestCheckLockSolvabilityWithNoLocksIsTriviallySatisfied(t *testing.T) {
	rooms, aisles := chain(4)
	artifact := &dungeon.Artifact{Rooms: rooms, Aisles: aisles}
	if result := CheckLockSolvability(artifact); !result.Satisfied {
		t.Fatalf("expected no locks to trivially satisfy solvability, got: %s", result.Details)
	}
}

func TestCheckLockSolvabilityDetectsUnobtainableKey(t *testing.T) {
	rooms, aisles := chain(3)
	// Lock the last aisle (into the goal) without placing any key anywhere.
	aisles[len(aisles)-1].SetLock(true)
	artifact := &dungeon.Artifact{Rooms: rooms, Aisles: aisles}
	if result := CheckLockSolvability(artifact); result.Satisfied {
		t.Fatal("expected an unobtainable key to fail lock solvability")
	}
}

func TestCheckLockSolvabilityAcceptsKeyBeforeLock(t *testing.T) {
	rooms, aisles := chain(4)
	rooms[1].Item = graph.Key
	aisles[2].SetLock(true) // the aisle into the goal, crossed only after rooms[1]
	artifact := &dungeon.Artifact{Rooms: rooms, Aisles: aisles}
	if result := CheckLockSolvability(artifact); !result.Satisfied {
		t.Fatalf("expected a key placed before its lock to satisfy solvability, got: %s", result.Details)
	}
}

func TestCheckCRCStabilityMatchesArtifactValue(t *testing.T) {
	grid := voxelGridForTest()
	artifact := &dungeon.Artifact{Voxel: grid, CRC32: grid.CRC32()}
	if result := CheckCRCStability(artifact); !result.Satisfied {
		t.Fatalf("expected matching CRC32 to pass, got: %s", result.Details)
	}
}

func TestCheckCRCStabilityDetectsMismatch(t *testing.T) {
	grid := voxelGridForTest()
	artifact := &dungeon.Artifact{Voxel: grid, CRC32: grid.CRC32() + 1}
	if result := CheckCRCStability(artifact); result.Satisfied {
		t.Fatal("expected a stale recorded CRC32 to fail stability")
	}
}

func TestValidateArtifactRunsAllChecks(t *testing.T) {
	g := dungeon.NewGenerator()
	cfg := dungeon.Config{
		Seed:                 1,
		NumCandidateRooms:    10,
		NumCandidateFloors:   3,
		RoomWidth:            dungeon.Range{Min: 3, Max: 5},
		RoomDepth:            dungeon.Range{Min: 3, Max: 5},
		RoomHeight:           dungeon.Range{Min: 2, Max: 3},
		HorizontalRoomMargin: 2,
		VerticalRoomMargin:   1,
		AisleComplexity:      0,
	}

	report, err := Validate(context.Background(), g, cfg)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !report.Passed {
		t.Fatalf("expected a clean generation to pass every property, failures: %+v", report.Failures())
	}
	if len(report.Results) != 7 {
		t.Fatalf("expected 7 property results, got %d", len(report.Results))
	}
}

func TestScenariosCoverAllSixCases(t *testing.T) {
	scenarios := Scenarios()
	if len(scenarios) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(scenarios))
	}
	for _, s := range scenarios {
		if err := s.Config.Validate(); err != nil {
			t.Fatalf("scenario %s has an invalid config: %v", s.Name, err)
		}
	}
}
