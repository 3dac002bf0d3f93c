// Package identifier provides the 16-bit tagged handle assigned to every
// Room and Aisle. The top 2 bits carry a Kind (Unknown, Room, Aisle); the
// low 14 bits are a counter shared by all kinds, so a single Allocator can
// mint up to 16384 identifiers in total before wrapping.
//
// Each dungeon generation attempt creates its own Allocator rather than
// using a package-level global: the original engine used a single static
// counter, which is fine for a single generator per process but breaks
// reproducibility the moment two generators run concurrently in the same
// process (one generator's rooms would shift the other's counter). See
// DESIGN.md for the reasoning.
package identifier
