package voxel

import (
	"fmt"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/identifier"
)

// CellType is the kind of content a grid cell holds.
type CellType uint8

const (
	Floor CellType = iota
	Deck
	Gate
	Aisle
	Slope
	Stairwell
	DownSpace
	UpSpace
	Empty
	OutOfBounds
)

func (t CellType) String() string {
	switch t {
	case Floor:
		return "Floor"
	case Deck:
		return "Deck"
	case Gate:
		return "Gate"
	case Aisle:
		return "Aisle"
	case Slope:
		return "Slope"
	case Stairwell:
		return "Stairwell"
	case DownSpace:
		return "DownSpace"
	case UpSpace:
		return "UpSpace"
	case Empty:
		return "Empty"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(t))
	}
}

// isSpatial reports whether t is open air rather than built geometry; any
// cell bordering a spatial neighbor always gets a wall.
func (t CellType) isSpatial() bool {
	return t == Empty || t == OutOfBounds
}

// Props marks a cell as the threshold of a locked aisle.
type Props uint8

const (
	NoProps Props = iota
	Lock
	UniqueLock
)

// Attributes is a per-cell bitset of mesh-generation hints.
type Attributes uint8

const (
	SuppressWallNorth Attributes = 1 << iota
	SuppressWallEast
	SuppressWallSouth
	SuppressWallWest
	SuppressFloor
	SuppressRoof
	CanMergeAisle
	IsCatwalk
)

func suppressedWallFor(dir geometry.Direction) Attributes {
	switch dir {
	case geometry.North:
		return SuppressWallNorth
	case geometry.East:
		return SuppressWallEast
	case geometry.South:
		return SuppressWallSouth
	case geometry.West:
		return SuppressWallWest
	default:
		return 0
	}
}

// Cell is a grid cell packed into 64 bits: type, direction, props and
// attributes each get a byte, the identifier gets two, and two bytes are
// reserved. Packing into a fixed-width integer (rather than a Go struct)
// keeps the dense grid's CRC-32 a pure function of cell content.
type Cell uint64

const (
	shiftType       = 0
	shiftDirection  = 8
	shiftProps      = 16
	shiftAttributes = 24
	shiftIdentifier = 32
)

func newCell(t CellType, dir geometry.Direction, props Props, attrs Attributes, id identifier.ID) Cell {
	return Cell(uint64(t)<<shiftType |
		uint64(dir)<<shiftDirection |
		uint64(props)<<shiftProps |
		uint64(attrs)<<shiftAttributes |
		uint64(id)<<shiftIdentifier)
}

// outOfBoundsCell is the sentinel value Grid.At returns for any coordinate
// outside its extent. It is never stored in the backing array.
var outOfBoundsCell = newCell(OutOfBounds, geometry.North, NoProps, 0, identifier.Invalid)

// emptyCell is the default contents of a freshly allocated Grid.
var emptyCell = newCell(Empty, geometry.North, NoProps, 0, identifier.Invalid)

func (c Cell) Type() CellType            { return CellType(uint64(c) >> shiftType & 0xFF) }
func (c Cell) Direction() geometry.Direction { return geometry.Direction(uint64(c) >> shiftDirection & 0xFF) }
func (c Cell) Props() Props              { return Props(uint64(c) >> shiftProps & 0xFF) }
func (c Cell) Attributes() Attributes    { return Attributes(uint64(c) >> shiftAttributes & 0xFF) }
func (c Cell) ID() identifier.ID         { return identifier.ID(uint64(c) >> shiftIdentifier & 0xFFFF) }

// WithType returns a copy of c with its type changed.
func (c Cell) WithType(t CellType) Cell {
	return newCell(t, c.Direction(), c.Props(), c.Attributes(), c.ID())
}

// WithDirection returns a copy of c with its facing changed.
func (c Cell) WithDirection(dir geometry.Direction) Cell {
	return newCell(c.Type(), dir, c.Props(), c.Attributes(), c.ID())
}

// WithProps returns a copy of c with its lock props changed.
func (c Cell) WithProps(p Props) Cell {
	return newCell(c.Type(), c.Direction(), p, c.Attributes(), c.ID())
}

// WithID returns a copy of c with its owning identifier changed.
func (c Cell) WithID(id identifier.ID) Cell {
	return newCell(c.Type(), c.Direction(), c.Props(), c.Attributes(), id)
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell[%s dir=%s props=%d id=%s]", c.Type(), c.Direction(), c.Props(), c.ID())
}

// CanBuildFloor reports whether a floor mesh belongs under this cell.
func (c Cell) CanBuildFloor() bool {
	switch c.Type() {
	case Deck, Gate, Aisle:
		return c.Attributes()&SuppressFloor == 0
	default:
		return false
	}
}

// CanBuildSlope reports whether this cell is a ramp surface.
func (c Cell) CanBuildSlope() bool {
	return c.Type() == Slope
}

// CanBuildRoof reports whether a ceiling mesh belongs over this cell,
// given the cell directly above it.
func (c Cell) CanBuildRoof(upper Cell) bool {
	if c.Type().isSpatial() {
		return false
	}
	if c.Attributes()&SuppressRoof != 0 {
		return false
	}
	if upper.ID() != c.ID() {
		return true
	}
	switch upper.Type() {
	case Aisle, Stairwell, UpSpace:
		return true
	default:
		return false
	}
}

func roomLike(t CellType) bool { return t == Deck || t == Floor }

// CanBuildWall reports whether a wall mesh belongs between c and neighbor
// across the face in direction dir. mergeRooms suppresses interior walls
// between adjacent, differently-identified rooms.
func (c Cell) CanBuildWall(neighbor Cell, dir geometry.Direction, mergeRooms bool) bool {
	if neighbor.Type().isSpatial() {
		return true
	}
	if c.Attributes()&suppressedWallFor(dir) != 0 {
		return false
	}

	switch {
	case roomLike(c.Type()) && roomLike(neighbor.Type()):
		if c.ID() == neighbor.ID() {
			return false
		}
		return !mergeRooms

	// A Gate's Direction is its outward face, toward the aisle side; the
	// opposite face (Direction().Inverse()) is its inward, room-side face.
	case roomLike(c.Type()) && neighbor.Type() == Gate:
		return neighbor.Direction() != dir

	case c.Type() == Gate && roomLike(neighbor.Type()):
		return c.Direction() != dir.Inverse()

	case c.Type() == Gate:
		return c.Direction() != dir

	case neighbor.Type() == Gate:
		return neighbor.Direction() != dir.Inverse()

	case roomLike(c.Type()):
		// any other neighbor kind against a room face: always enclosed.
		return true

	case c.Type() == Aisle && neighbor.Type() == Aisle:
		if c.ID() == neighbor.ID() {
			return false
		}
		return c.Attributes()&CanMergeAisle == 0 || neighbor.Attributes()&CanMergeAisle == 0

	case c.Type() == Slope || neighbor.Type() == Slope:
		rampDir := c.Direction()
		if c.Type() != Slope {
			rampDir = neighbor.Direction()
		}
		return rampDir != dir && rampDir.Inverse() != dir

	default:
		return true
	}
}

// CanBuildGate reports whether c (which must be a Gate cell) needs a door
// mesh on its face toward dir: always its outward, aisle-facing side.
func (c Cell) CanBuildGate(neighbor Cell, dir geometry.Direction, mergeRooms bool) bool {
	if mergeRooms {
		return false
	}
	return c.Type() == Gate && c.Direction() == dir
}
