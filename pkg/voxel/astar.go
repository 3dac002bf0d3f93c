package voxel

import (
	"container/heap"
	"errors"
	"sort"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
)

// ErrGateSearchFailed is returned when no cell on the starting room's
// boundary has an open neighbor to anchor a route from.
var ErrGateSearchFailed = errors.New("voxel: no gate cell found")

// ErrRouteSearchFailed is returned when A* exhausts its open list without
// reaching the target room's footprint.
var ErrRouteSearchFailed = errors.New("voxel: no route to target room")

const (
	costContinue = 1
	costTurn     = 2
	costRamp     = 3
)

// noFacing marks a search node that has taken no horizontal step yet, so
// its first move is never charged a turn cost it couldn't have avoided.
const noFacing geometry.Direction = 0xFF

type moveKind uint8

const (
	moveStart moveKind = iota
	moveHorizontal
	moveUp
	moveDown
)

type searchNode struct {
	pos    geometry.Vec3
	facing geometry.Direction
	g      int
	f      int
	parent *searchNode
	kind   moveKind
	seq    int
	index  int
}

// openQueue is the A* open list: lowest f first, ties broken by
// later-insertion-wins (highest seq pops first).
type openQueue []*searchNode

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq > q[j].seq
}
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *openQueue) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*q)
	*q = append(*q, n)
}
func (q *openQueue) Pop() any {
	old := *q
	last := len(old) - 1
	item := old[last]
	old[last] = nil
	item.index = -1
	*q = old[:last]
	return item
}

func heuristic(p, goal geometry.Vec3) int {
	dx, dy, dz := p.X-goal.X, p.Y-goal.Y, p.Z-goal.Z
	return absInt(dx) + absInt(dy) + 2*absInt(dz)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// isGoalCell reports whether p is a cell inside target's floor-level
// footprint that is currently a Deck cell owned by target: the goal
// condition for routing an aisle toward target.
func isGoalCell(g *Grid, target *graph.Room, p geometry.Vec3) bool {
	if p.Z != target.Background() {
		return false
	}
	if !target.Box().Contains(p) {
		return false
	}
	c := g.At(p)
	return c.Type() == Deck && c.ID() == target.ID
}

// reachableStep reports whether p is a valid A* step destination: open
// space, or the goal cell itself.
func reachableStep(g *Grid, p geometry.Vec3, target *graph.Room) bool {
	if g.At(p).Type() == Empty {
		return true
	}
	return isGoalCell(g, target, p)
}

// findGateCell searches start's floor-level boundary for a Deck cell with
// an Empty outward neighbor, preferring the candidate whose outward
// neighbor lies closest (Manhattan, in the horizontal plane) to target's
// ground center. Ties break by boundary scan order: north edge ascending
// x, south edge ascending x, west edge ascending y, east edge ascending y.
func findGateCell(g *Grid, start, target *graph.Room) (pos geometry.Vec3, outward geometry.Direction, ok bool) {
	z := start.Background()
	anchor := target.GroundCenter().Round()

	type candidate struct {
		pos   geometry.Vec3
		dir   geometry.Direction
		score int
	}
	var candidates []candidate

	consider := func(x, y int, dir geometry.Direction) {
		p := geometry.Vec3{X: x, Y: y, Z: z}
		cell := g.At(p)
		if cell.Type() != Deck || cell.ID() != start.ID {
			return
		}
		outside := p.Add(dir.Vector())
		if g.At(outside).Type() != Empty {
			return
		}
		score := absInt(outside.X-anchor.X) + absInt(outside.Y-anchor.Y)
		candidates = append(candidates, candidate{p, dir, score})
	}

	for x := start.Left(); x < start.Right(); x++ {
		consider(x, start.Top(), geometry.North)
	}
	for x := start.Left(); x < start.Right(); x++ {
		consider(x, start.Bottom()-1, geometry.South)
	}
	for y := start.Top(); y < start.Bottom(); y++ {
		consider(start.Left(), y, geometry.West)
	}
	for y := start.Top(); y < start.Bottom(); y++ {
		consider(start.Right()-1, y, geometry.East)
	}

	if len(candidates) == 0 {
		return geometry.Vec3{}, 0, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })
	best := candidates[0]
	return best.pos, best.dir, true
}

// tryRamp attempts a vertical transition from cur in the direction dz
// (+1 up, -1 down), consuming the shaft and forward helper cells and
// landing on the new head. It returns false if any helper cell is not
// Empty or has already been reserved by an earlier transition in this
// search.
func tryRamp(g *Grid, cur *searchNode, dz int, targetAnchor geometry.Vec3, reserved map[geometry.Vec3]bool) (*searchNode, bool) {
	if cur.facing == noFacing {
		return nil, false
	}
	shaft := cur.pos.Add(geometry.Vec3{Z: dz})
	forward := cur.pos.Add(cur.facing.Vector())
	landing := forward.Add(geometry.Vec3{Z: dz})

	for _, c := range [2]geometry.Vec3{shaft, forward} {
		if reserved[c] || g.At(c).Type() != Empty {
			return nil, false
		}
	}
	if g.At(landing).Type() != Empty {
		return nil, false
	}

	kind := moveUp
	if dz < 0 {
		kind = moveDown
	}
	ng := cur.g + costRamp
	return &searchNode{
		pos: landing, facing: cur.facing, g: ng,
		f: ng + heuristic(landing, targetAnchor),
		parent: cur, kind: kind,
	}, true
}

// RouteAisle is voxelization phase B for one aisle: it orients the aisle
// so the search starts from the deeper-depth room, finds a gate on that
// room's boundary, A*-searches the grid for the shallower room's
// footprint, and on success paints the gate, aisle and ramp cells
// discovered along the path.
func RouteAisle(g *Grid, a *graph.Aisle) error {
	start, target := a.P0.Room, a.P1.Room
	if start.DepthFromStart < target.DepthFromStart {
		start, target = target, start
	}

	gatePos, outward, ok := findGateCell(g, start, target)
	if !ok {
		return ErrGateSearchFailed
	}
	head := gatePos.Add(outward.Vector())
	anchor := target.GroundCenter().Round()

	startNode := &searchNode{pos: head, facing: outward, kind: moveStart}
	startNode.f = heuristic(head, anchor)

	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, startNode)

	seq := 0
	best := map[geometry.Vec3]int{head: 0}
	reserved := map[geometry.Vec3]bool{}

	var goalNode *searchNode
	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		if bestG, seen := best[cur.pos]; seen && cur.g > bestG {
			continue
		}
		if cur.kind != moveStart && isGoalCell(g, target, cur.pos) {
			goalNode = cur
			break
		}

		for _, dir := range geometry.Directions {
			np := cur.pos.Add(dir.Vector())
			if !reachableStep(g, np, target) {
				continue
			}
			cost := costTurn
			if cur.facing != noFacing && dir == cur.facing {
				cost = costContinue
			}
			ng := cur.g + cost
			if prevG, seen := best[np]; seen && prevG <= ng {
				continue
			}
			best[np] = ng
			seq++
			heap.Push(open, &searchNode{
				pos: np, facing: dir, g: ng, f: ng + heuristic(np, anchor),
				parent: cur, kind: moveHorizontal, seq: seq,
			})
		}

		for _, dz := range [2]int{1, -1} {
			n, ok := tryRamp(g, cur, dz, anchor, reserved)
			if !ok {
				continue
			}
			if prevG, seen := best[n.pos]; seen && prevG <= n.g {
				continue
			}
			reserved[cur.pos.Add(geometry.Vec3{Z: dz})] = true
			reserved[cur.pos.Add(cur.facing.Vector())] = true
			best[n.pos] = n.g
			seq++
			n.seq = seq
			heap.Push(open, n)
		}
	}

	if goalNode == nil {
		return ErrRouteSearchFailed
	}

	paintPath(g, a, gatePos, outward, goalNode)
	return nil
}

// paintPath walks the discovered path from start to goal, painting the
// two gates and every aisle/ramp cell in between with the aisle's
// identifier. The gate cell's Direction is its outward, aisle-facing
// side; the four-cell ramp motif assigns Stairwell to the landing a
// transition departs from, Slope to the horizontal cell bridging the two
// levels, and UpSpace/DownSpace to the headroom cell directly above or
// below that landing.
func paintPath(g *Grid, a *graph.Aisle, gatePos geometry.Vec3, outward geometry.Direction, goalNode *searchNode) {
	props := NoProps
	switch {
	case a.UniqueLocked():
		props = UniqueLock
	case a.Locked():
		props = Lock
	}
	g.Set(gatePos, newCell(Gate, outward, props, 0, a.ID))

	var chain []*searchNode
	for n := goalNode; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	last := len(chain) - 1
	for i, n := range chain {
		if n.kind == moveUp || n.kind == moveDown {
			dz, shaftType := 1, UpSpace
			if n.kind == moveDown {
				dz, shaftType = -1, DownSpace
			}
			off := n.parent.pos
			forward := off.Add(n.facing.Vector())
			shaft := off.Add(geometry.Vec3{Z: dz})
			g.Set(off, newCell(Stairwell, n.facing, NoProps, 0, a.ID))
			g.Set(forward, newCell(Slope, n.facing, NoProps, 0, a.ID))
			g.Set(shaft, newCell(shaftType, n.facing, NoProps, 0, a.ID))
		}

		if i == last {
			g.Set(n.pos, newCell(Gate, n.facing.Inverse(), NoProps, 0, a.ID))
		} else {
			g.Set(n.pos, newCell(Aisle, n.facing, NoProps, 0, a.ID))
		}
	}
}

// RouteAisles routes every aisle in stable length-ascending order,
// stopping at the first failure.
func RouteAisles(g *Grid, aisles []*graph.Aisle) error {
	ordered := make([]*graph.Aisle, len(aisles))
	copy(ordered, aisles)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Length < ordered[j].Length })

	for _, a := range ordered {
		if err := RouteAisle(g, a); err != nil {
			return err
		}
	}
	return nil
}
