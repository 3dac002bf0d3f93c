package validation

import (
	"context"

	"github.com/dshills/dungeon3d/pkg/dungeon"
	"github.com/dshills/dungeon3d/pkg/graph"
)

// CheckDeterminism regenerates cfg twice under the same seed and compares
// the resulting CRC32 and effective seed. A zero seed is coerced to 1,
// since wall-clock seeding (seed 0) is not itself reproducible and isn't
// what this property is about.
func CheckDeterminism(ctx context.Context, gen dungeon.Generator, cfg dungeon.Config) PropertyResult {
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	a, err := gen.Generate(ctx, cfg)
	if err != nil {
		return newResult("Determinism", false, "first run failed: %v", err)
	}
	b, err := gen.Generate(ctx, cfg)
	if err != nil {
		return newResult("Determinism", false, "second run failed: %v", err)
	}
	if a.EffectiveSeed != b.EffectiveSeed {
		return newResult("Determinism", false, "seed %d produced effective seeds %d and %d",
			cfg.Seed, a.EffectiveSeed, b.EffectiveSeed)
	}
	if a.CRC32 != b.CRC32 {
		return newResult("Determinism", false, "seed %d produced CRC32 %08x and %08x across two runs",
			cfg.Seed, a.CRC32, b.CRC32)
	}
	return newResult("Determinism", true, "seed %d reproduced CRC32 %08x across two runs", cfg.Seed, a.CRC32)
}

// CheckNoOverlaps confirms no two surviving rooms share a cell, at zero
// margin — the pure geometric invariant, independent of the extra
// clearance Config.HorizontalRoomMargin/VerticalRoomMargin enforce during
// placement.
func CheckNoOverlaps(artifact *dungeon.Artifact) PropertyResult {
	rooms := artifact.Rooms
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Box().Intersects(rooms[j].Box()) {
				return newResult("NoOverlaps", false, "room %s overlaps room %s", rooms[i].ID, rooms[j].ID)
			}
		}
	}
	return newResult("NoOverlaps", true, "%d rooms, no pairwise overlaps", len(rooms))
}

// CheckCanonicalOrigin confirms every room has non-negative coordinates
// and that the rooms' combined bounding box minimum sits exactly at the
// origin, the postcondition placement.Canonicalize is responsible for.
func CheckCanonicalOrigin(artifact *dungeon.Artifact) PropertyResult {
	rooms := artifact.Rooms
	if len(rooms) == 0 {
		return newResult("CanonicalOrigin", true, "no rooms to check")
	}

	minX, minY, minZ := rooms[0].Position.X, rooms[0].Position.Y, rooms[0].Position.Z
	for _, r := range rooms {
		if r.Position.X < 0 || r.Position.Y < 0 || r.Position.Z < 0 {
			return newResult("CanonicalOrigin", false, "room %s has a negative coordinate: %v", r.ID, r.Position)
		}
		if r.Position.X < minX {
			minX = r.Position.X
		}
		if r.Position.Y < minY {
			minY = r.Position.Y
		}
		if r.Position.Z < minZ {
			minZ = r.Position.Z
		}
	}
	if minX != 0 || minY != 0 || minZ != 0 {
		return newResult("CanonicalOrigin", false, "bounding box minimum is (%d,%d,%d), not the origin", minX, minY, minZ)
	}
	return newResult("CanonicalOrigin", true, "bounding box minimum sits at the origin")
}

// CheckReachability confirms every surviving room is reachable from the
// start room by crossing aisles (tree or loop edges alike).
func CheckReachability(artifact *dungeon.Artifact) PropertyResult {
	rooms := artifact.Rooms
	if len(rooms) <= 1 {
		return newResult("Reachability", true, "fewer than two rooms, trivially reachable")
	}

	start := rooms[0]
	for _, r := range rooms {
		if r.Parts == graph.Start {
			start = r
			break
		}
	}

	visited := bfsReachable(start, artifact.Aisles, allEdges)
	if len(visited) != len(rooms) {
		return newResult("Reachability", false, "%d of %d rooms reachable from start", len(visited), len(rooms))
	}
	return newResult("Reachability", true, "all %d rooms reachable from start", len(rooms))
}

// CheckMSTCorrectness confirms the aisle set's tree edges number exactly
// len(rooms)-1 and alone span every room, i.e. they form a spanning tree
// rather than a forest with stray loop edges mislabeled as tree edges.
// It does not compare the tree's total length against other spanning
// trees, so minimality is not checked.
func CheckMSTCorrectness(artifact *dungeon.Artifact) PropertyResult {
	rooms := artifact.Rooms
	if len(rooms) == 0 {
		return newResult("MSTCorrectness", true, "no rooms")
	}

	var treeCount int
	for _, a := range artifact.Aisles {
		if a.IsTree() {
			treeCount++
		}
	}
	if treeCount != len(rooms)-1 {
		return newResult("MSTCorrectness", false, "expected %d tree aisles for %d rooms, found %d",
			len(rooms)-1, len(rooms), treeCount)
	}

	visited := bfsReachable(rooms[0], artifact.Aisles, treeEdges)
	if len(visited) != len(rooms) {
		return newResult("MSTCorrectness", false, "tree aisles do not span all %d rooms (%d reached)",
			len(rooms), len(visited))
	}
	return newResult("MSTCorrectness", true, "%d tree aisles form a spanning tree over %d rooms", treeCount, len(rooms))
}

// CheckLockSolvability confirms the goal room remains reachable from
// start once locked aisles are respected: a locked aisle can only be
// crossed after a Key has been collected (one key opens one lock, keys
// are fungible), and a unique-locked aisle only after the UniqueKey has
// been collected. The search relaxes monotonically in the number of keys
// held, so a room revisited with strictly more resources than its last
// visit is re-expanded — this mirrors a widest-path search rather than a
// plain BFS, since carrying more keys can only unlock more of the graph.
func CheckLockSolvability(artifact *dungeon.Artifact) PropertyResult {
	hasLocks := false
	for _, a := range artifact.Aisles {
		if a.Locked() {
			hasLocks = true
			break
		}
	}
	if !hasLocks {
		return newResult("LockSolvability", true, "no locked aisles to solve")
	}

	var start, goal *graph.Room
	for _, r := range artifact.Rooms {
		switch r.Parts {
		case graph.Start:
			start = r
		case graph.Goal:
			goal = r
		}
	}
	if start == nil {
		return newResult("LockSolvability", false, "no start room found")
	}

	adj := buildAdjacency(artifact.Aisles, allEdges)

	type resource struct {
		keys   int
		unique bool
	}
	type state struct {
		room *graph.Room
		resource
	}

	best := map[*graph.Room]resource{}
	collected := map[*graph.Room]bool{start: true}

	initial := resource{}
	switch start.Item {
	case graph.Key:
		initial.keys = 1
	case graph.UniqueKey:
		initial.unique = true
	}
	best[start] = initial
	reached := map[*graph.Room]bool{start: true}
	queue := []state{{room: start, resource: initial}}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		for _, a := range adj[s.room] {
			next := a.Other(s.room).Room
			keys, unique := s.keys, s.unique

			if a.UniqueLocked() {
				if !unique {
					continue
				}
			} else if a.Locked() {
				if keys <= 0 {
					continue
				}
				keys--
			}

			if !collected[next] {
				collected[next] = true
				switch next.Item {
				case graph.Key:
					keys++
				case graph.UniqueKey:
					unique = true
				}
			}

			reached[next] = true

			if prev, ok := best[next]; ok && prev.keys >= keys && (prev.unique || !unique) {
				continue
			}
			best[next] = resource{keys: keys, unique: unique}
			queue = append(queue, state{room: next, resource: resource{keys: keys, unique: unique}})
		}
	}

	if goal != nil && !reached[goal] {
		return newResult("LockSolvability", false, "goal room %s is unreachable under the key/lock constraints", goal.ID)
	}
	return newResult("LockSolvability", true, "goal room is reachable from start given the placed keys")
}

// CheckCRCStability confirms the grid's CRC32 is a pure function of its
// contents: recomputing it twice yields the same value, and it matches
// the value the pipeline already recorded on Artifact.CRC32.
func CheckCRCStability(artifact *dungeon.Artifact) PropertyResult {
	a := artifact.Voxel.CRC32()
	b := artifact.Voxel.CRC32()
	if a != b {
		return newResult("CRCStability", false, "recomputing CRC32 on the same grid changed the value: %08x vs %08x", a, b)
	}
	if a != artifact.CRC32 {
		return newResult("CRCStability", false, "artifact.CRC32 (%08x) does not match grid.CRC32() (%08x)", artifact.CRC32, a)
	}
	return newResult("CRCStability", true, "CRC32 %08x is stable across repeated computation", a)
}

type edgeFilter func(*graph.Aisle) bool

func allEdges(*graph.Aisle) bool   { return true }
func treeEdges(a *graph.Aisle) bool { return a.IsTree() }

func buildAdjacency(aisles []*graph.Aisle, keep edgeFilter) map[*graph.Room][]*graph.Aisle {
	adj := map[*graph.Room][]*graph.Aisle{}
	for _, a := range aisles {
		if !keep(a) {
			continue
		}
		adj[a.P0.Room] = append(adj[a.P0.Room], a)
		adj[a.P1.Room] = append(adj[a.P1.Room], a)
	}
	return adj
}

func bfsReachable(start *graph.Room, aisles []*graph.Aisle, keep edgeFilter) map[*graph.Room]bool {
	adj := buildAdjacency(aisles, keep)
	visited := map[*graph.Room]bool{start: true}
	queue := []*graph.Room{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range adj[cur] {
			other := a.Other(cur).Room
			if visited[other] {
				continue
			}
			visited[other] = true
			queue = append(queue, other)
		}
	}
	return visited
}
