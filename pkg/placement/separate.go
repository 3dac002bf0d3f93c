package placement

import (
	"errors"
	"math"
	"sort"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
	"github.com/dshills/dungeon3d/pkg/rng"
)

// ErrSeparateRoomsFailed is returned when rooms still overlap after 10
// relaxation passes and the subsequent removal pass. pkg/dungeon treats
// this as a terminal, non-retryable failure.
var ErrSeparateRoomsFailed = errors.New("placement: rooms still overlap after separation")

const maxSeparationPasses = 10

// Separate iteratively pushes overlapping rooms apart along the nearest
// of the four horizontal escape planes (no vertical plane exists: rooms
// are only ever separated in x/y, matching the reference relaxation).
// Rooms still overlapping after the pass limit are dropped; if any
// overlap survives that removal, Separate returns ErrSeparateRoomsFailed.
func Separate(rooms []*graph.Room, r *rng.RNG, hMargin, vMargin int) ([]*graph.Room, error) {
	for pass := 0; pass < maxSeparationPasses; pass++ {
		sort.SliceStable(rooms, func(i, j int) bool {
			return geometry.DistSquared(rooms[i].Center(), geometry.Point{}) <
				geometry.DistSquared(rooms[j].Center(), geometry.Point{})
		})

		moved := false
		for i, a := range rooms {
			for j, b := range rooms {
				if i == j {
					continue
				}
				if !a.Intersects(b, hMargin, vMargin) {
					continue
				}
				pushApart(a, b, r, hMargin)
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	survivors := dropOverlapping(rooms, hMargin, vMargin)
	if anyOverlap(survivors, hMargin, vMargin) {
		return nil, ErrSeparateRoomsFailed
	}
	return survivors, nil
}

// pushApart moves b away from a along the ray from a's center through
// b's center, landing it just outside the combined horizontal margin
// box. A degenerate (coincident-center) pair is nudged along a random
// angle first.
func pushApart(a, b *graph.Room, r *rng.RNG, hMargin int) {
	ac, bc := a.Center(), b.Center()
	dx, dy := bc.X-ac.X, bc.Y-ac.Y
	if dx == 0 && dy == 0 {
		angle := r.Float64() * 2 * math.Pi
		dx, dy = math.Sincos(angle)
	}

	halfX := float64(a.Size.X+b.Size.X)/2 + float64(hMargin)
	halfY := float64(a.Size.Y+b.Size.Y)/2 + float64(hMargin)

	tx, ty := math.Inf(1), math.Inf(1)
	switch {
	case dx > 0:
		tx = halfX / dx
	case dx < 0:
		tx = halfX / -dx
	}
	switch {
	case dy > 0:
		ty = halfY / dy
	case dy < 0:
		ty = halfY / -dy
	}
	t := math.Min(tx, ty)

	newCenter := geometry.Point{X: ac.X + dx*t, Y: ac.Y + dy*t}.Floor()
	b.Position.X = newCenter.X - b.Size.X/2
	b.Position.Y = newCenter.Y - b.Size.Y/2
}

func anyOverlap(rooms []*graph.Room, hMargin, vMargin int) bool {
	for i, a := range rooms {
		for j, b := range rooms {
			if i != j && a.Intersects(b, hMargin, vMargin) {
				return true
			}
		}
	}
	return false
}

// dropOverlapping removes every room that still overlaps at least one
// other room, scanning in the rooms' current (post-relaxation) order.
func dropOverlapping(rooms []*graph.Room, hMargin, vMargin int) []*graph.Room {
	keep := make([]bool, len(rooms))
	for i := range keep {
		keep[i] = true
	}
	for i, a := range rooms {
		for j, b := range rooms {
			if i == j {
				continue
			}
			if a.Intersects(b, hMargin, vMargin) {
				keep[i] = false
				break
			}
		}
	}
	survivors := make([]*graph.Room, 0, len(rooms))
	for i, r := range rooms {
		if keep[i] {
			survivors = append(survivors, r)
		}
	}
	return survivors
}
