package voxel

import (
	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
)

// PaintRooms is voxelization phase A: it fills every room's footprint into
// g, a Deck layer at the room's floor level and Empty headspace above it,
// every cell tagged with the room's identifier. Phase B (RouteAisle) then
// carves the gates and aisles that connect these footprints.
func PaintRooms(g *Grid, rooms []*graph.Room) {
	for _, room := range rooms {
		floorZ := room.Background()
		for z := floorZ; z < room.Foreground(); z++ {
			t := Empty
			if z == floorZ {
				t = Deck
			}
			for y := room.Top(); y < room.Bottom(); y++ {
				for x := room.Left(); x < room.Right(); x++ {
					g.Set(geometry.Vec3{X: x, Y: y, Z: z}, newCell(t, geometry.North, NoProps, 0, room.ID))
				}
			}
		}
	}
}
