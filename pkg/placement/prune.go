package placement

import (
	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
)

// Prune removes any room whose inflated bounds escape [0,extent), then
// removes any room still overlapping another survivor (with margins),
// repeating the overlap pass until it finds nothing left to remove. Call
// this after Canonicalize.
func Prune(rooms []*graph.Room, extent geometry.Vec3, hMargin, vMargin int) []*graph.Room {
	survivors := make([]*graph.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Box().Inflated(hMargin, vMargin).InsideExtent(extent) {
			survivors = append(survivors, r)
		}
	}

	for {
		next := dropOverlapping(survivors, hMargin, vMargin)
		if len(next) == len(survivors) {
			return next
		}
		survivors = next
	}
}
