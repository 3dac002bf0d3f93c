package rng

import "math"

// Perlin is a classical 3D Perlin noise field with a 256-entry
// permutation table shuffled by an RNG (Fisher-Yates), duplicated to 512
// entries so lookups never need to wrap.
type Perlin struct {
	hash [512]uint8
}

// NewPerlin builds a permutation table by shuffling the identity
// permutation [0,255] with r, consuming 255 draws.
func NewPerlin(r *RNG) *Perlin {
	p := &Perlin{}
	for i := 0; i < 256; i++ {
		p.hash[i] = uint8(i)
	}
	for i := 255; i >= 1; i-- {
		j := r.Intn(i + 1)
		p.hash[i], p.hash[j] = p.hash[j], p.hash[i]
	}
	for i := 0; i < 256; i++ {
		p.hash[256+i] = p.hash[i]
	}
	return p
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad reproduces the 4-case/16-case gradient selection from the
// reference implementation: when z is exactly 0 (the common case for
// 2D-flavored sampling), only the low 2 bits of hash are consulted.
func grad(hash uint8, x, y, z float64) float64 {
	if z == 0 {
		switch hash & 0x3 {
		case 0x0:
			return x + y
		case 0x1:
			return -x + y
		case 0x2:
			return x - y
		default:
			return -x - y
		}
	}
	switch hash & 0xF {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x + z
	case 0x5:
		return -x + z
	case 0x6:
		return x - z
	case 0x7:
		return -x - z
	case 0x8:
		return y + z
	case 0x9:
		return -y + z
	case 0xA:
		return y - z
	case 0xB:
		return -y - z
	case 0xC:
		return y + x
	case 0xD:
		return -y + z
	case 0xE:
		return y - x
	default:
		return -y - z
	}
}

// Noise samples the field at (x,y,z), returning a value in [-1,1].
func (p *Perlin) Noise(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255
	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)
	u := fade(x)
	v := fade(y)
	w := fade(z)

	a0 := int(p.hash[xi]) + yi
	a1 := int(p.hash[a0]) + zi
	a2 := int(p.hash[a0+1]) + zi
	b0 := int(p.hash[xi+1]) + yi
	b1 := int(p.hash[b0]) + zi
	b2 := int(p.hash[b0+1]) + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.hash[a1], x, y, z), grad(p.hash[b1], x-1, y, z)),
			lerp(u, grad(p.hash[a2], x, y-1, z), grad(p.hash[b2], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p.hash[a1+1], x, y, z-1), grad(p.hash[b1+1], x-1, y, z-1)),
			lerp(u, grad(p.hash[a2+1], x, y-1, z-1), grad(p.hash[b2+1], x-1, y-1, z-1))))
}

// VerticalBias maps Noise into a [0,1] weight favoring sparser upper
// floors: (noise*0.5+0.5)*1.333, clamped to [0,1].
func (p *Perlin) VerticalBias(x, y, z float64) float64 {
	v := (p.Noise(x, y, z)*0.5 + 0.5) * 1.333
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
