package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"time"
)

// Marsaglia's default xorshift128 seed constants. When a caller supplies
// a non-zero seed only x is replaced; y, z, w stay fixed so a single
// uint32 is enough to fully determine the stream.
const (
	defaultY uint32 = 362436069
	defaultZ uint32 = 521288629
	defaultW uint32 = 88675123
)

// RNG is a four-word xorshift32 (xorshift128) generator. It is the single
// source of non-determinism for a dungeon generation attempt: every draw
// the pipeline makes, in call order, is reproducible given the seed.
type RNG struct {
	x, y, z, w uint32
}

// NewRNG creates an RNG from seed. A zero seed is replaced with one
// derived from the wall clock; callers that need to know the effective
// seed used should read it back before seeding (dungeon.Config does this).
func NewRNG(seed uint32) *RNG {
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
		if seed == 0 {
			seed = 1
		}
	}
	return &RNG{x: seed, y: defaultY, z: defaultZ, w: defaultW}
}

// DeriveSeed computes a reproducible effective seed for retry attempt n of
// a master seed, via the first four bytes of SHA-256(masterSeed || n).
// DeriveSeed(seed, 0) is NOT required to equal seed; callers that want an
// unretried run to reuse the raw seed directly should special-case
// attempt 0 themselves (dungeon.Generator does).
func DeriveSeed(masterSeed uint32, attempt int) uint32 {
	h := sha256.New()
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], masterSeed)
	h.Write(buf[:])
	var abuf [8]byte
	binary.BigEndian.PutUint64(abuf[:], uint64(attempt))
	h.Write(abuf[:])
	sum := h.Sum(nil)
	derived := binary.BigEndian.Uint32(sum[:4])
	if derived == 0 {
		derived = 1
	}
	return derived
}

// next draws the next raw 32-bit word and advances the state.
func (r *RNG) next() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return r.w
}

// Uint32 returns the next raw 32-bit word.
func (r *RNG) Uint32() uint32 {
	return r.next()
}

// Intn returns a pseudo-random integer in [0,to). Panics if to <= 0.
func (r *RNG) Intn(to int) int {
	if to <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return int(r.next() % uint32(to))
}

// IntRange returns a pseudo-random integer in [from,to], inclusive on
// both ends. Panics if from > to.
func (r *RNG) IntRange(from, to int) int {
	if from > to {
		panic("rng: IntRange from must be <= to")
	}
	if from == to {
		return from
	}
	span := uint32(to-from) + 1
	return from + int(r.next()%span)
}

// Float64 returns a pseudo-random float64 in [0,1).
func (r *RNG) Float64() float64 {
	return float64(r.next()) / (float64(math.MaxUint32) + 1)
}

// FloatRange returns a pseudo-random float64 in [0,to], both endpoints
// reachable with equal density, matching the real-number contract of the
// original Random::Get<T>(to) overload.
func (r *RNG) FloatRange(to float64) float64 {
	return float64(r.next()) / float64(math.MaxUint32) * to
}

// Sign returns -1 or +1 with equal probability.
func (r *RNG) Sign() int {
	if r.next()&1 == 0 {
		return -1
	}
	return 1
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements using
// swap to exchange positions i and j, consuming exactly n-1 draws.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// DrawLots performs a weighted random selection over n candidates.
// weight(i) is clamped to a minimum of 1 (a non-positive weight still
// gets a chance, matching the original DrawLots helper). Returns -1 if
// n is 0.
func (r *RNG) DrawLots(n int, weight func(i int) int) int {
	if n <= 0 {
		return -1
	}
	total := 0
	cum := make([]int, n)
	for i := 0; i < n; i++ {
		w := weight(i)
		if w < 1 {
			w = 1
		}
		total += w
		cum[i] = total
	}
	pick := r.Intn(total)
	for i, c := range cum {
		if pick < c {
			return i
		}
	}
	return n - 1
}
