package mission

import (
	"github.com/dshills/dungeon3d/pkg/graph"
	"github.com/dshills/dungeon3d/pkg/rng"
)

// maxKeyPlacementAttempts caps the backward walk from the goal room. The
// reference implementation bounds this the same way: a dungeon whose
// mission graph still can't terminate after 8 lock/key placements is
// treated as done rather than looped forever.
const maxKeyPlacementAttempts = 8

// Place walks the aisle graph backward from goal, locking one incident
// edge per iteration and placing a matching key in a weighted-random
// room reachable (via currently-unlocked edges) from the far side of that
// lock. It mutates Room.Item and the aisles' lock flags in place.
func Place(r *rng.RNG, rooms []*graph.Room, aisles []*graph.Aisle, goal *graph.Room) {
	adj := adjacency(aisles)
	current := goal

	for count := 0; count < maxKeyPlacementAttempts; count++ {
		edge := selectLockCandidate(adj, current)
		if edge == nil {
			return
		}

		if count == 0 {
			edge.SetUniqueLock(true)
		} else {
			edge.SetLock(true)
		}

		opposite := edge.Other(current).Room
		reachable := keyCandidates(reachableUnlocked(adj, opposite))
		if len(reachable) == 0 {
			edge.SetLock(false)
			return
		}

		idx := r.DrawLots(len(reachable), func(i int) int {
			return keyWeight(reachable[i], current, len(rooms))
		})
		if idx < 0 {
			edge.SetLock(false)
			return
		}

		chosen := reachable[idx]
		if count == 0 {
			chosen.Item = graph.UniqueKey
		} else {
			chosen.Item = graph.Key
		}

		if current.DepthFromStart < 3 {
			return
		}
		next := randomRoomAtDepth(r, rooms, int(current.DepthFromStart)-2)
		if next == nil {
			return
		}
		current = next
	}
}

func keyWeight(candidate, current *graph.Room, roomCount int) int {
	w := abs(int(candidate.BranchID) - int(current.BranchID))
	w += int(candidate.DepthFromStart)
	if candidate.Parts == graph.Hanare {
		w += roomCount / 2
	}
	return w
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// adjacency builds a room -> incident aisles map in aisle-slice order, so
// edge selection below is deterministic.
func adjacency(aisles []*graph.Aisle) map[*graph.Room][]*graph.Aisle {
	adj := map[*graph.Room][]*graph.Aisle{}
	for _, a := range aisles {
		adj[a.P0.Room] = append(adj[a.P0.Room], a)
		adj[a.P1.Room] = append(adj[a.P1.Room], a)
	}
	return adj
}

// selectLockCandidate returns the first unlocked edge incident to
// current whose opposite endpoint is shallower (closer to start), or nil
// if none exists.
func selectLockCandidate(adj map[*graph.Room][]*graph.Aisle, current *graph.Room) *graph.Aisle {
	for _, a := range adj[current] {
		if a.Locked() {
			continue
		}
		if a.Other(current).Room.DepthFromStart < current.DepthFromStart {
			return a
		}
	}
	return nil
}

// keyCandidates filters rooms down to ones eligible to hold a key: not yet
// itemed, and not the start or goal room or an unidentified placeholder.
// Matches FindByRoute's exclusion of Start/Goal/already-itemed rooms before
// the weighted draw.
func keyCandidates(rooms []*graph.Room) []*graph.Room {
	var out []*graph.Room
	for _, room := range rooms {
		if room.Item != graph.Empty {
			continue
		}
		switch room.Parts {
		case graph.Start, graph.Goal, graph.Unidentified:
			continue
		}
		out = append(out, room)
	}
	return out
}

// reachableUnlocked returns every room reachable from start by crossing
// only currently-unlocked edges, start included, in BFS discovery order.
func reachableUnlocked(adj map[*graph.Room][]*graph.Aisle, start *graph.Room) []*graph.Room {
	visited := map[*graph.Room]bool{start: true}
	order := []*graph.Room{start}
	queue := []*graph.Room{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range adj[cur] {
			if a.Locked() {
				continue
			}
			other := a.Other(cur).Room
			if visited[other] {
				continue
			}
			visited[other] = true
			order = append(order, other)
			queue = append(queue, other)
		}
	}
	return order
}

// randomRoomAtDepth returns an equally-weighted random room whose
// DepthFromStart equals depth, or nil if none exists.
func randomRoomAtDepth(r *rng.RNG, rooms []*graph.Room, depth int) *graph.Room {
	if depth < 0 {
		return nil
	}
	var candidates []*graph.Room
	for _, room := range rooms {
		if int(room.DepthFromStart) == depth {
			candidates = append(candidates, room)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[r.Intn(len(candidates))]
}
