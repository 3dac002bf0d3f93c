package geometry

import "math"

// Vec3 is an integer grid-space vector, used for voxel coordinates and
// room positions/sizes.
type Vec3 struct {
	X, Y, Z int
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Point converts v to a real-valued Point.
func (v Vec3) Point() Point {
	return Point{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Point is a real-valued 3D position, used as a graph vertex location.
type Point struct {
	X, Y, Z float64
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Sqrt(DistSquared(a, b))
}

// DistSquared returns the squared Euclidean distance between a and b,
// avoiding the sqrt where only relative ordering matters (e.g. sorting
// rooms by distance to origin during separation).
func DistSquared(a, b Point) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// Round converts p to a Vec3 by rounding each component to the nearest
// integer (half away from zero), matching the reference placement math.
func (p Point) Round() Vec3 {
	return Vec3{
		X: int(math.Round(p.X)),
		Y: int(math.Round(p.Y)),
		Z: int(math.Round(p.Z)),
	}
}

// Floor converts p to a Vec3 by flooring each component.
func (p Point) Floor() Vec3 {
	return Vec3{
		X: int(math.Floor(p.X)),
		Y: int(math.Floor(p.Y)),
		Z: int(math.Floor(p.Z)),
	}
}
