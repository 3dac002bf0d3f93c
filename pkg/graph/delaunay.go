package graph

import (
	"math"
	"sort"

	"github.com/dshills/dungeon3d/pkg/geometry"
)

// Edge is an undirected pair of indices into the Vertex slice passed to
// Triangulate, carrying its Euclidean length for later MST/sort use.
type Edge struct {
	A, B   int
	Length float64
}

// Triangulate computes the 3D Delaunay tetrahedralization of verts via
// incremental Bowyer-Watson insertion, and returns the deduplicated edges
// of every emitted triangle face whose three corners are all real
// vertices. With fewer than four vertices there is no tetrahedralization;
// the fallback connects the points in order as a simple polygon, closed
// into a cycle once there are at least three of them.
func Triangulate(verts []Vertex) []Edge {
	n := len(verts)
	if n < 2 {
		return nil
	}
	if n < 4 {
		return simplePolygon(verts)
	}

	pts := make([]geometry.Point, n, n+4)
	for i, v := range verts {
		pts[i] = v.Point
	}

	center, radius := boundingSphere(pts)
	super := superTetrahedron(center, radius)
	pts = append(pts, super[:]...)

	tetras := []tetra{{v: [4]int{n, n + 1, n + 2, n + 3}}}
	for i := 0; i < n; i++ {
		tetras = insertPoint(tetras, pts, i)
	}

	faces := map[[3]int]bool{}
	for _, t := range tetras {
		for _, f := range facesOf(t) {
			if usesSuper(f, n) {
				continue
			}
			faces[sortedFace(f)] = true
		}
	}

	edgeSet := map[[2]int]bool{}
	var edges []Edge
	addEdge := func(a, b int) {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if edgeSet[key] {
			return
		}
		edgeSet[key] = true
		edges = append(edges, Edge{A: key[0], B: key[1], Length: geometry.Dist(pts[key[0]], pts[key[1]])})
	}
	for f := range faces {
		addEdge(f[0], f[1])
		addEdge(f[1], f[2])
		addEdge(f[0], f[2])
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

func simplePolygon(verts []Vertex) []Edge {
	n := len(verts)
	var edges []Edge
	for i := 0; i < n; i++ {
		j := i + 1
		if j >= n {
			if n < 3 {
				break
			}
			j = 0
		}
		edges = append(edges, Edge{A: i, B: j, Length: geometry.Dist(verts[i].Point, verts[j].Point)})
	}
	return edges
}

// tetra is four point indices with no implied winding; it is treated as
// an unordered 4-set throughout this file.
type tetra struct {
	v [4]int
}

func facesOf(t tetra) [4][3]int {
	v := t.v
	return [4][3]int{
		{v[0], v[1], v[2]},
		{v[0], v[1], v[3]},
		{v[0], v[2], v[3]},
		{v[1], v[2], v[3]},
	}
}

func sortedFace(f [3]int) [3]int {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

func usesSuper(f [3]int, n int) bool {
	for _, idx := range f {
		if idx >= n {
			return true
		}
	}
	return false
}

func boundingSphere(pts []geometry.Point) (geometry.Point, float64) {
	var center geometry.Point
	for _, p := range pts {
		center = center.Add(p)
	}
	center = center.Scale(1 / float64(len(pts)))

	var radius float64
	for _, p := range pts {
		if d := geometry.Dist(center, p); d > radius {
			radius = d
		}
	}
	return center, radius
}

// superTetrahedron returns four points, arranged as a regular tetrahedron
// around center, far enough out to enclose the bounding sphere of every
// real point. The exact margin only needs to be generous: these vertices
// (and every face that still touches one) are discarded before the
// final face list is built.
func superTetrahedron(center geometry.Point, radius float64) [4]geometry.Point {
	scale := radius*50 + 1000
	inv3 := 1 / math.Sqrt(3)
	dirs := [4]geometry.Point{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	var out [4]geometry.Point
	for i, d := range dirs {
		out[i] = center.Add(d.Scale(scale * inv3))
	}
	return out
}

// insertPoint removes every tetrahedron whose circumsphere contains
// pts[pointIdx] (the "bad" cavity), then reseals the cavity by connecting
// each of its boundary faces — the faces that belonged to exactly one bad
// tetrahedron — to the new point.
func insertPoint(tetras []tetra, pts []geometry.Point, pointIdx int) []tetra {
	var bad, good []tetra
	for _, t := range tetras {
		if inCircumsphere(t, pts, pointIdx) {
			bad = append(bad, t)
		} else {
			good = append(good, t)
		}
	}

	faceCount := map[[3]int]int{}
	for _, t := range bad {
		for _, f := range facesOf(t) {
			faceCount[sortedFace(f)]++
		}
	}
	for _, t := range bad {
		for _, f := range facesOf(t) {
			if faceCount[sortedFace(f)] == 1 {
				good = append(good, tetra{v: [4]int{f[0], f[1], f[2], pointIdx}})
			}
		}
	}
	return good
}

func inCircumsphere(t tetra, pts []geometry.Point, pointIdx int) bool {
	center, radiusSq, ok := circumsphere(pts[t.v[0]], pts[t.v[1]], pts[t.v[2]], pts[t.v[3]])
	if !ok {
		return false
	}
	const epsilon = 1e-7
	return geometry.DistSquared(center, pts[pointIdx]) <= radiusSq+epsilon
}

// circumsphere solves for the center and squared radius of the sphere
// through a, b, c, d using the 3x3 linear system obtained by shifting
// coordinates so a is the origin. ok is false for a (near-)degenerate,
// coplanar tetrahedron, which Bowyer-Watson then simply never removes.
func circumsphere(a, b, c, d geometry.Point) (geometry.Point, float64, bool) {
	bx, by, bz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	cx, cy, cz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	dx, dy, dz := d.X-a.X, d.Y-a.Y, d.Z-a.Z

	det := bx*(cy*dz-cz*dy) - by*(cx*dz-cz*dx) + bz*(cx*dy-cy*dx)
	if math.Abs(det) < 1e-12 {
		return geometry.Point{}, 0, false
	}

	rb := (bx*bx + by*by + bz*bz) / 2
	rc := (cx*cx + cy*cy + cz*cz) / 2
	rd := (dx*dx + dy*dy + dz*dz) / 2

	ox := (rb*(cy*dz-cz*dy) - by*(rc*dz-cz*rd) + bz*(rc*dy-cy*rd)) / det
	oy := (bx*(rc*dz-cz*rd) - rb*(cx*dz-cz*dx) + bz*(cx*rd-rc*dx)) / det
	oz := (bx*(cy*rd-rc*dy) - by*(cx*rd-rc*dx) + rb*(cx*dy-cy*dx)) / det

	center := geometry.Point{X: a.X + ox, Y: a.Y + oy, Z: a.Z + oz}
	return center, ox*ox + oy*oy + oz*oz, true
}
