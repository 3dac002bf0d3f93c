package graph

import "github.com/dshills/dungeon3d/pkg/geometry"

// Vertex is a graph vertex: a Point anchored to the Room that owns it.
// The back-reference is a plain (unowned) pointer — Rooms are arena-owned
// by the Generator, Vertices are transient values built fresh for each
// graph stage, so there is no real ownership cycle to break.
type Vertex struct {
	geometry.Point
	Room *Room
}

// VerticesFromRooms builds one Vertex per room, at the room's ground
// center, in the same order as rooms.
func VerticesFromRooms(rooms []*Room) []Vertex {
	verts := make([]Vertex, len(rooms))
	for i, r := range rooms {
		verts[i] = Vertex{Point: r.GroundCenter(), Room: r}
	}
	return verts
}
