package placement

import (
	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
)

// Canonicalize translates every room so the combined AABB's minimum
// corner sits at the origin, and returns the resulting world extents
// (width, depth, height) = max-min. Room bounds are half-open on the max
// side (Right = x+w, etc., per the room invariants), so the extent is
// exactly that difference with no further adjustment.
func Canonicalize(rooms []*graph.Room) geometry.Vec3 {
	if len(rooms) == 0 {
		return geometry.Vec3{}
	}

	min, max := rooms[0].Box().Min, rooms[0].Box().Max()
	for _, r := range rooms[1:] {
		b := r.Box()
		bMax := b.Max()
		if b.Min.X < min.X {
			min.X = b.Min.X
		}
		if b.Min.Y < min.Y {
			min.Y = b.Min.Y
		}
		if b.Min.Z < min.Z {
			min.Z = b.Min.Z
		}
		if bMax.X > max.X {
			max.X = bMax.X
		}
		if bMax.Y > max.Y {
			max.Y = bMax.Y
		}
		if bMax.Z > max.Z {
			max.Z = bMax.Z
		}
	}

	for _, r := range rooms {
		r.Position = r.Position.Sub(min)
	}

	return max.Sub(min)
}
