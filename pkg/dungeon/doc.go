// Package dungeon provides the core dungeon generator interface. It
// orchestrates the full pipeline: room placement, separation,
// canonicalization and pruning, graph construction, mission-graph lock/key
// placement, and voxelization with A* aisle routing, retrying on a
// recoverable failure for at most Config.MaxRetries attempts in total.
package dungeon
