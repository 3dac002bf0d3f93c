// Package validation provides reusable checks for the seven testable
// properties of a generated dungeon: determinism, absence of room
// overlaps, a canonical (origin-anchored) bounding box, full reachability
// from the start room, spanning-tree correctness of the aisle graph,
// lock/key solvability of the mission graph, and CRC32 stability.
//
// These checks are a verification concern, not a generation-path one:
// Validate is never called from dungeon.Generator.Generate. A generation
// attempt reports its own outcome through Artifact.LastError; validation
// exists for tests and CI scenario sweeps to confirm a produced artifact
// actually upholds the invariants the pipeline is supposed to maintain.
//
// Scenarios returns six concrete configurations — fixed seeds and
// parameters chosen to exercise particular code paths (maximum aisle
// complexity, merged rooms, a flat single floor, the mission graph, and a
// cross-host CRC comparison) — for use as a smoke-test sweep.
package validation
