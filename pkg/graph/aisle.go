package graph

import (
	"fmt"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/identifier"
)

// Aisle is a graph edge connecting two room vertices: the corridor that
// pkg/voxel will later route between them.
type Aisle struct {
	P0, P1 Vertex
	Length float64

	ID identifier.ID

	locked       bool
	uniqueLocked bool
	tree         bool
}

// IsTree reports whether this aisle is part of the minimum spanning tree,
// as opposed to a loop edge reintroduced for non-linear layouts.
func (a *Aisle) IsTree() bool { return a.tree }

// NewAisle builds an Aisle between p0 and p1, assigning it a fresh Aisle
// identifier from alloc. Length is dist(p0,p1).
func NewAisle(alloc *identifier.Allocator, p0, p1 Vertex) *Aisle {
	return &Aisle{
		P0:     p0,
		P1:     p1,
		Length: geometry.Dist(p0.Point, p1.Point),
		ID:     alloc.New(identifier.Aisle),
	}
}

// Locked reports whether the aisle is gated by a lock (shared or unique).
func (a *Aisle) Locked() bool { return a.locked }

// UniqueLocked reports whether the aisle is gated by the single unique key.
func (a *Aisle) UniqueLocked() bool { return a.uniqueLocked }

// SetLock sets the shared lock flag. Clearing it also clears the unique
// lock, since a unique lock cannot outlive its parent lock.
func (a *Aisle) SetLock(locked bool) {
	a.locked = locked
	if !locked {
		a.uniqueLocked = false
	}
}

// SetUniqueLock sets the unique-lock flag; setting it true implies locked.
func (a *Aisle) SetUniqueLock(unique bool) {
	a.uniqueLocked = unique
	if unique {
		a.locked = true
	}
}

// Has reports whether r is one of the aisle's two endpoints.
func (a *Aisle) Has(r *Room) bool {
	return a.P0.Room == r || a.P1.Room == r
}

// Other returns the endpoint opposite r. Panics if r is not an endpoint;
// callers only invoke this after Has.
func (a *Aisle) Other(r *Room) Vertex {
	if a.P0.Room == r {
		return a.P1
	}
	return a.P0
}

// Equal reports unordered endpoint equality: (A,B) == (B,A).
func (a *Aisle) Equal(o *Aisle) bool {
	same := a.P0.Room == o.P0.Room && a.P1.Room == o.P1.Room
	swapped := a.P0.Room == o.P1.Room && a.P1.Room == o.P0.Room
	return same || swapped
}

func (a *Aisle) String() string {
	return fmt.Sprintf("Aisle[%s len=%.2f locked=%v unique=%v]", a.ID, a.Length, a.locked, a.uniqueLocked)
}
