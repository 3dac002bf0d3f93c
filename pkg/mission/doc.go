// Package mission walks the room graph backward from the goal room,
// placing locked aisles and the keys that open them, so that a player
// following the graph from start is guaranteed a solvable route.
package mission
