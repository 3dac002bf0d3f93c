package graph

import (
	"fmt"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/identifier"
)

// DepthInfinite is the depth_from_start sentinel assigned to every room
// before the semantics stage runs its BFS-like descent from the start room.
const DepthInfinite uint8 = 255

// Parts tags a room's role in the mission layout.
type Parts int

const (
	Unidentified Parts = iota
	Hall
	Hanare // leaf room in the MST
	Start
	Goal
)

// String returns the human-readable name of p.
func (p Parts) String() string {
	switch p {
	case Unidentified:
		return "Unidentified"
	case Hall:
		return "Hall"
	case Hanare:
		return "Hanare"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Parts(%d)", int(p))
	}
}

// Item tags what, if anything, a room hands the player.
type Item int

const (
	Empty Item = iota
	Key
	UniqueKey
)

// String returns the human-readable name of i.
func (i Item) String() string {
	switch i {
	case Empty:
		return "Empty"
	case Key:
		return "Key"
	case UniqueKey:
		return "UniqueKey"
	default:
		return fmt.Sprintf("Item(%d)", int(i))
	}
}

// Room is a rectangular region of the grid: an integer AABB plus the
// mission-graph fields assigned by later stages.
type Room struct {
	Position geometry.Vec3
	Size     geometry.Vec3 // (w, d, h)

	ID   identifier.ID
	Parts
	Item

	DepthFromStart uint8
	BranchID       uint8
}

// NewRoom builds a Room at position with size (w,d,h), assigning it a
// fresh Room identifier from alloc. DepthFromStart starts at the
// DepthInfinite sentinel.
func NewRoom(alloc *identifier.Allocator, position, size geometry.Vec3) *Room {
	return &Room{
		Position:       position,
		Size:           size,
		ID:             alloc.New(identifier.Room),
		Parts:          Unidentified,
		Item:           Empty,
		DepthFromStart: DepthInfinite,
	}
}

// Left, Right, Top, Bottom, Background and Foreground are the room's
// half-open AABB faces along the grid axes: X is left/right, Y is
// top/bottom, Z is background/foreground (floor/ceiling).
func (r *Room) Left() int       { return r.Position.X }
func (r *Room) Right() int      { return r.Position.X + r.Size.X }
func (r *Room) Top() int        { return r.Position.Y }
func (r *Room) Bottom() int     { return r.Position.Y + r.Size.Y }
func (r *Room) Background() int { return r.Position.Z }
func (r *Room) Foreground() int { return r.Position.Z + r.Size.Z }

// Box returns the room's AABB in geometry.Box form.
func (r *Room) Box() geometry.Box {
	return geometry.Box{Min: r.Position, Size: r.Size}
}

// Center returns the real-valued centroid of the room.
func (r *Room) Center() geometry.Point {
	return r.Box().Center()
}

// GroundCenter returns the centroid projected onto the floor (z =
// Background()); this is the point used as the room's graph vertex.
func (r *Room) GroundCenter() geometry.Point {
	c := r.Center()
	c.Z = float64(r.Background())
	return c
}

// Intersects reports whether r and o overlap once both are inflated by
// (hMargin, hMargin, vMargin) on their minimum corner only, matching the
// min-side-only margin rule used throughout separation and pruning.
func (r *Room) Intersects(o *Room, hMargin, vMargin int) bool {
	return r.Box().Inflated(hMargin, vMargin).Intersects(o.Box().Inflated(hMargin, vMargin))
}

func (r *Room) String() string {
	return fmt.Sprintf("Room[%s pos=%v size=%v parts=%s item=%s depth=%d branch=%d]",
		r.ID, r.Position, r.Size, r.Parts, r.Item, r.DepthFromStart, r.BranchID)
}
