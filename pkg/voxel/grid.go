package voxel

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/dshills/dungeon3d/pkg/geometry"
)

// Grid is a dense, row-major (z,y,x) array of Cell covering an axis-aligned
// extent starting at the origin. Every coordinate within Size is always
// addressable; Grid.At on an out-of-range coordinate returns a sentinel
// OutOfBounds cell rather than panicking, so callers probing a cell's
// neighbors never need a bounds check of their own.
type Grid struct {
	Size  geometry.Vec3
	cells []Cell
}

// NewGrid allocates a Grid of the given size, every cell initialized Empty.
func NewGrid(size geometry.Vec3) *Grid {
	n := size.X * size.Y * size.Z
	if n < 0 {
		n = 0
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = emptyCell
	}
	return &Grid{Size: size, cells: cells}
}

// inBounds reports whether p lies within [0,Size) on every axis.
func (g *Grid) inBounds(p geometry.Vec3) bool {
	return p.X >= 0 && p.X < g.Size.X &&
		p.Y >= 0 && p.Y < g.Size.Y &&
		p.Z >= 0 && p.Z < g.Size.Z
}

func (g *Grid) index(p geometry.Vec3) int {
	return (p.Z*g.Size.Y+p.Y)*g.Size.X + p.X
}

// At returns the cell at p, or an OutOfBounds sentinel if p lies outside
// the grid.
func (g *Grid) At(p geometry.Vec3) Cell {
	if !g.inBounds(p) {
		return outOfBoundsCell
	}
	return g.cells[g.index(p)]
}

// Set stores v at p. Out-of-range coordinates are silently ignored, since
// callers that walk a room's margin-inflated box may legitimately probe
// just past the grid edge.
func (g *Grid) Set(p geometry.Vec3, v Cell) {
	if !g.inBounds(p) {
		return
	}
	g.cells[g.index(p)] = v
}

// CRC32 returns the IEEE CRC-32 of the grid's cell contents, each cell
// serialized little-endian in array order. Two grids produced by the same
// generation run (same seed, same config) always checksum identically.
func (g *Grid) CRC32() uint32 {
	buf := make([]byte, 8)
	h := crc32.NewIEEE()
	for _, c := range g.cells {
		binary.LittleEndian.PutUint64(buf, uint64(c))
		h.Write(buf)
	}
	return h.Sum32()
}
