// Package placement scatters candidate rooms around the origin with a
// Perlin-biased vertical distribution, iteratively separates any that
// overlap, and canonicalizes the survivors onto a zero-based extent.
//
// The three stages (Scatter, Separate, Canonicalize/Prune) are meant to
// run in sequence against the same *rng.RNG, consuming it in that fixed
// order so that a generation attempt stays reproducible end to end.
package placement
