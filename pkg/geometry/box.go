package geometry

// Box is an axis-aligned integer box: all cells with Min.X <= x < Max().X
// (and likewise for Y, Z) belong to it. It backs Room's AABB and the
// voxel grid's overall extents.
type Box struct {
	Min  Vec3
	Size Vec3
}

// Max returns the half-open upper corner, Min+Size.
func (b Box) Max() Vec3 {
	return b.Min.Add(b.Size)
}

// Center returns the real-valued midpoint of the box.
func (b Box) Center() Point {
	max := b.Max()
	return Point{
		X: (float64(b.Min.X) + float64(max.X)) / 2,
		Y: (float64(b.Min.Y) + float64(max.Y)) / 2,
		Z: (float64(b.Min.Z) + float64(max.Z)) / 2,
	}
}

// Contains reports whether p (as an integer cell) lies within the
// half-open box.
func (b Box) Contains(p Vec3) bool {
	max := b.Max()
	return p.X >= b.Min.X && p.X < max.X &&
		p.Y >= b.Min.Y && p.Y < max.Y &&
		p.Z >= b.Min.Z && p.Z < max.Z
}

// Inflated returns a copy of b whose minimum corner has been pulled
// outward by (h,h,v) — the min-side-only margin inflation spec.md uses
// for room separation and overlap checks. The max corner is untouched.
func (b Box) Inflated(h, v int) Box {
	return Box{
		Min:  Vec3{X: b.Min.X - h, Y: b.Min.Y - h, Z: b.Min.Z - v},
		Size: Vec3{X: b.Size.X + h, Y: b.Size.Y + h, Z: b.Size.Z + v},
	}
}

// Intersects reports whether two half-open boxes overlap.
func (b Box) Intersects(o Box) bool {
	bMax, oMax := b.Max(), o.Max()
	return b.Min.X < oMax.X && o.Min.X < bMax.X &&
		b.Min.Y < oMax.Y && o.Min.Y < bMax.Y &&
		b.Min.Z < oMax.Z && o.Min.Z < bMax.Z
}

// InsideExtent reports whether b lies entirely within [0,extent) on all
// three axes.
func (b Box) InsideExtent(extent Vec3) bool {
	if b.Min.X < 0 || b.Min.Y < 0 || b.Min.Z < 0 {
		return false
	}
	max := b.Max()
	return max.X <= extent.X && max.Y <= extent.Y && max.Z <= extent.Z
}
