package graph

import (
	"math"
	"sort"

	"github.com/dshills/dungeon3d/pkg/identifier"
	"github.com/dshills/dungeon3d/pkg/rng"
)

// BuildAisles runs Kruskal's MST over verts' Delaunay edges (edges
// processed in stable length-ascending order, ties broken by insertion
// order per the tree's ordering contract), then reintroduces a shuffled
// subset of the rejected edges as non-tree loop edges when complexity is
// non-zero. Returned aisles are tree edges first, in MST order, followed
// by any loop edges.
func BuildAisles(alloc *identifier.Allocator, r *rng.RNG, verts []Vertex, complexity int) []*Aisle {
	edges := Triangulate(verts)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Length < edges[j].Length })

	uf := newUnionFind(len(verts))
	var treeEdges, rejected []Edge
	for _, e := range edges {
		if uf.union(e.A, e.B) {
			treeEdges = append(treeEdges, e)
		} else {
			rejected = append(rejected, e)
		}
	}

	aisles := make([]*Aisle, 0, len(treeEdges))
	for _, e := range treeEdges {
		a := NewAisle(alloc, verts[e.A], verts[e.B])
		a.tree = true
		aisles = append(aisles, a)
	}

	if complexity > 0 && len(rejected) > 0 && len(treeEdges) >= 2 {
		maxK := len(treeEdges) / 2
		k := int(math.Round(float64(len(treeEdges)) * 0.05 * float64(complexity)))
		if k < 1 {
			k = 1
		}
		if k > maxK {
			k = maxK
		}
		if k > len(rejected) {
			k = len(rejected)
		}
		r.Shuffle(len(rejected), func(i, j int) { rejected[i], rejected[j] = rejected[j], rejected[i] })
		for _, e := range rejected[:k] {
			loop := NewAisle(alloc, verts[e.A], verts[e.B])
			loop.SetLock(false)
			aisles = append(aisles, loop)
		}
	}

	return aisles
}
