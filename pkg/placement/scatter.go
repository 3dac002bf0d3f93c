package placement

import (
	"math"

	"github.com/dshills/dungeon3d/pkg/geometry"
	"github.com/dshills/dungeon3d/pkg/graph"
	"github.com/dshills/dungeon3d/pkg/identifier"
	"github.com/dshills/dungeon3d/pkg/rng"
)

// Range is an inclusive [Min,Max] sampling interval.
type Range struct {
	Min, Max int
}

// ScatterParams configures the candidate-room scatter.
type ScatterParams struct {
	NumRooms             int
	NumFloors            int
	Width, Depth, Height Range
	HorizontalMargin     int
}

// noiseFrequency divides horizontal position before sampling the Perlin
// field, so the vertical bias varies smoothly across the scatter disk
// instead of jittering independently per room.
const noiseFrequency = 10.0

// Scatter draws NumRooms candidate rooms in a disk around the origin,
// biasing their floor (z) toward lower levels via p's Perlin field. Rooms
// are very likely to overlap; Separate resolves that afterward.
func Scatter(alloc *identifier.Allocator, r *rng.RNG, p *rng.Perlin, params ScatterParams) []*graph.Room {
	n := params.NumRooms
	if n < 1 {
		n = 1
	}
	minHalf := params.Width.Min
	if params.Depth.Min < minHalf {
		minHalf = params.Depth.Min
	}
	radius := math.Sqrt(float64(n)) * float64(minHalf+params.HorizontalMargin)

	rooms := make([]*graph.Room, 0, params.NumRooms)
	for i := 0; i < params.NumRooms; i++ {
		angle := r.Float64() * 2 * math.Pi
		distance := r.FloatRange(radius)

		sin, cos := math.Sincos(angle)
		x := sin * distance
		y := cos * distance

		var z float64
		if params.HorizontalMargin != 0 {
			noise := p.VerticalBias(x/noiseFrequency, y/noiseFrequency, 0)
			z = float64(params.NumFloors-1) * noise
		}

		pos := geometry.Point{X: x, Y: y, Z: z}.Round()

		size := geometry.Vec3{
			X: r.IntRange(params.Width.Min, params.Width.Max),
			Y: r.IntRange(params.Depth.Min, params.Depth.Max),
			Z: r.IntRange(params.Height.Min, params.Height.Max),
		}

		rooms = append(rooms, graph.NewRoom(alloc, pos, size))
	}
	return rooms
}
