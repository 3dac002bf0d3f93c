// Package voxel materializes placed rooms and routed aisles into the
// dense 3D grid that is the generator's final output: a flat array of
// packed Cell values addressed in row-major (z,y,x) order, painted by
// PaintRooms and RouteAisle, and checksummed by Grid.CRC32.
package voxel
