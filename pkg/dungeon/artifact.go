package dungeon

import (
	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
	"github.com/dshills/dungeon3d/pkg/voxel"
)

// Artifact is the complete, read-only output of one generation run: the
// voxel grid, the room and aisle tables with their mission-graph
// annotations, the derived start/goal/leaf points, and the values an
// embedder needs to verify bit-identical reconstruction on a peer.
type Artifact struct {
	Voxel  *voxel.Grid
	Rooms  []*graph.Room
	Aisles []*graph.Aisle

	StartPoint geometry.Point
	GoalPoint  geometry.Point
	LeafPoints []geometry.Point

	// EffectiveSeed and CRC32 are the two values a peer must reproduce to
	// confirm it regenerated the identical dungeon.
	EffectiveSeed uint32
	CRC32         uint32

	// LastError is Success for a clean run, or TriangulationFailed for a
	// best-effort run that degraded to an edgeless room set.
	LastError ErrorKind
}
