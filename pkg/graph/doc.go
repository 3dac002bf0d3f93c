// Package graph builds the connectivity structure over a set of placed
// rooms: a 3D Delaunay tetrahedralization of room centers, a Kruskal
// minimum spanning tree over the resulting edges, optional loop edges for
// non-linear layouts, and the start/goal/leaf/depth/branch labeling that
// later stages (pkg/mission, pkg/voxel) consume.
package graph
