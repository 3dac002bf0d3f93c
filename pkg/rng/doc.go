// Package rng provides the deterministic pseudo-random stream shared by
// every stage of the dungeon pipeline, plus the classical 3D Perlin
// noise field used to bias room placement toward lower floors.
//
// # Single shared stream
//
// Unlike a per-stage-derived RNG scheme, a dungeon.Generator owns exactly
// one *RNG for the life of a generation attempt and threads it through
// placement, separation, graph construction, and the mission walk in a
// fixed order. Two RNGs built from the same seed draw byte-identical
// sequences, which is what makes the whole pipeline reproducible: given
// the same seed and the same call order, every room position, every
// separation push, every Delaunay/MST tie-break, and every key placement
// comes out identical.
//
// # Seed derivation across retries
//
// DeriveSeed lets a generator reseed a fresh attempt after a retryable
// failure (see pkg/dungeon) without losing reproducibility: the pair
// (masterSeed, attempt) always derives the same effective seed, so two
// peers that both retry the same number of times converge on the same
// output.
package rng
