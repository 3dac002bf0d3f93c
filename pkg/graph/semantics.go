package graph

import "github.com/dshills/dungeon3d/pkg/geometry"

// Semantics is the bundle of graph-stage output consumed by the mission
// and voxelization stages.
type Semantics struct {
	Start        *Room
	Goal         *Room
	Leaves       []*Room
	DeepestDepth uint8
}

// adjacency builds a room -> incident aisles map, preserving input order.
func adjacency(aisles []*Aisle) map[*Room][]*Aisle {
	adj := map[*Room][]*Aisle{}
	for _, a := range aisles {
		adj[a.P0.Room] = append(adj[a.P0.Room], a)
		adj[a.P1.Room] = append(adj[a.P1.Room], a)
	}
	return adj
}

func treeAdjacency(aisles []*Aisle) map[*Room][]*Aisle {
	adj := map[*Room][]*Aisle{}
	for _, a := range aisles {
		if !a.tree {
			continue
		}
		adj[a.P0.Room] = append(adj[a.P0.Room], a)
		adj[a.P1.Room] = append(adj[a.P1.Room], a)
	}
	return adj
}

// SelectStart picks the start room: among every aisle endpoint, the one
// whose position is closest to (mean_x, max_y, same_z) — where mean_x is
// the average x of all endpoints and max_y is the largest y among them.
func SelectStart(aisles []*Aisle) *Room {
	if len(aisles) == 0 {
		return nil
	}

	type endpoint struct {
		room *Room
		pt   geometry.Point
	}
	seen := map[*Room]bool{}
	var endpoints []endpoint
	for _, a := range aisles {
		for _, v := range [2]Vertex{a.P0, a.P1} {
			if seen[v.Room] {
				continue
			}
			seen[v.Room] = true
			endpoints = append(endpoints, endpoint{room: v.Room, pt: v.Point})
		}
	}

	var sumX float64
	maxY := endpoints[0].pt.Y
	for _, e := range endpoints {
		sumX += e.pt.X
		if e.pt.Y > maxY {
			maxY = e.pt.Y
		}
	}
	meanX := sumX / float64(len(endpoints))

	var best *Room
	bestDist := -1.0
	for _, e := range endpoints {
		target := geometry.Point{X: meanX, Y: maxY, Z: e.pt.Z}
		d := geometry.DistSquared(e.pt, target)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = e.room
		}
	}
	return best
}

// AssignDepths runs a BFS from start over every aisle (tree and loop
// edges alike, since a loop edge can shorten a path), assigning each
// reachable room the minimum number of hops from start. It returns the
// deepest depth reached.
func AssignDepths(start *Room, aisles []*Aisle) uint8 {
	adj := adjacency(aisles)
	start.DepthFromStart = 0
	var deepest uint8
	queue := []*Room{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range adj[cur] {
			other := a.Other(cur).Room
			if other.DepthFromStart != DepthInfinite {
				continue
			}
			other.DepthFromStart = cur.DepthFromStart + 1
			if other.DepthFromStart > deepest {
				deepest = other.DepthFromStart
			}
			queue = append(queue, other)
		}
	}
	return deepest
}

// SelectGoalAndLeaves walks the spanning tree from start with an
// iterative (stack-based) DFS, accumulating aisle length along each
// branch. The goal is the room with the greatest accumulated length,
// first-found wins ties. Every DFS-terminal room other than the goal is
// returned as a leaf.
func SelectGoalAndLeaves(start *Room, aisles []*Aisle) (goal *Room, leaves []*Room) {
	adj := treeAdjacency(aisles)

	type frame struct {
		room      *Room
		parent    *Room
		accLength float64
	}

	visited := map[*Room]bool{start: true}
	goal = start
	bestLength := 0.0
	stack := []frame{{room: start, accLength: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var children []frame
		for _, a := range adj[f.room] {
			other := a.Other(f.room).Room
			if other == f.parent || visited[other] {
				continue
			}
			visited[other] = true
			childLen := f.accLength + a.Length
			if childLen > bestLength {
				bestLength = childLen
				goal = other
			}
			children = append(children, frame{room: other, parent: f.room, accLength: childLen})
		}

		if len(children) == 0 {
			leaves = append(leaves, f.room)
			continue
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	out := leaves[:0]
	for _, l := range leaves {
		if l != goal {
			out = append(out, l)
		}
	}
	return goal, out
}

// AssignBranchIDs walks the spanning tree from start with an iterative
// DFS. A room with three or more incident tree edges is a branch point:
// the running branch counter is incremented once per non-parent neighbor
// before descending into it, so siblings radiating from the same branch
// point each get a distinct branch id. Rooms below a non-branching room
// inherit their parent's branch id.
func AssignBranchIDs(start *Room, aisles []*Aisle) {
	adj := treeAdjacency(aisles)

	type frame struct {
		room   *Room
		branch uint8
	}

	start.BranchID = 0
	visited := map[*Room]bool{start: true}
	var counter uint8
	stack := []frame{{room: start, branch: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.room.BranchID = f.branch

		branchPoint := len(adj[f.room]) >= 3

		var children []*Room
		for _, a := range adj[f.room] {
			other := a.Other(f.room).Room
			if visited[other] {
				continue
			}
			visited[other] = true
			children = append(children, other)
		}

		childFrames := make([]frame, len(children))
		for i, child := range children {
			branch := f.branch
			if branchPoint {
				counter++
				branch = counter
			}
			childFrames[i] = frame{room: child, branch: branch}
		}
		for i := len(childFrames) - 1; i >= 0; i-- {
			stack = append(stack, childFrames[i])
		}
	}
}

// AssignParts labels start, goal, and every leaf as Start/Goal/Hanare and
// every other room as Hall.
func AssignParts(rooms []*Room, start, goal *Room, leaves []*Room) {
	isLeaf := map[*Room]bool{}
	for _, l := range leaves {
		isLeaf[l] = true
	}
	for _, r := range rooms {
		switch {
		case r == start:
			r.Parts = Start
		case r == goal:
			r.Parts = Goal
		case isLeaf[r]:
			r.Parts = Hanare
		default:
			r.Parts = Hall
		}
	}
}

// DeriveSemantics runs the full start/goal/leaf/depth/branch derivation
// (spec sections 4.6-4.7) over an already-built aisle set and assigns the
// resulting Parts labels onto rooms.
func DeriveSemantics(rooms []*Room, aisles []*Aisle) Semantics {
	start := SelectStart(aisles)
	if start == nil {
		return Semantics{}
	}
	deepest := AssignDepths(start, aisles)
	goal, leaves := SelectGoalAndLeaves(start, aisles)
	AssignBranchIDs(start, aisles)
	AssignParts(rooms, start, goal, leaves)
	return Semantics{Start: start, Goal: goal, Leaves: leaves, DeepestDepth: deepest}
}
