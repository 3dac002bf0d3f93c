// Package geometry provides the grid-aligned coordinate primitives shared
// by every later pipeline stage: compass Direction, integer Vec3 and Box,
// and the real-valued Point used as a graph vertex.
package geometry
