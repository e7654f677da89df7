// Package figure models a planar figure subdivided into triangles.
//
// What:
//
//   - Triangle: three distinct vertex labels in clockwise order, each paired
//     with the angle at that vertex. Angle slots are mutable; vertices are not.
//   - Mesh: a fixed set of triangles over one angle dimension, with vertex
//     queries, the clockwise fan around a vertex, and interior-vertex
//     detection.
//
// Fans:
//
// The fan of a vertex v is rebuilt purely from local adjacency (no
// coordinates): two triangles around v are neighbours when the vertex
// following v in one is the vertex preceding v in the other. A vertex is
// interior when its fan has more than two triangles and closes on itself.
// Wheel exposes the fan split into apex, forward and backward corners, the
// three angle roles used by the 360° and pairing rules.
//
// Structure checks (NewMesh):
//
//   - one angle dimension across all triangles,
//   - no repeated vertex set,
//   - every directed edge used once (inner edges shared by exactly two
//     consistently oriented triangles),
//   - edge-connected.
//
// Errors:
//
//   - ErrBadVertexCount     not three distinct non-negative vertices / three angles.
//   - ErrVertexNotFound     vertex absent from a triangle or the mesh.
//   - ErrBadIndex           angle slot outside 0..2.
//   - ErrTriangleNotFound   no triangle over the requested vertex set.
//   - ErrDuplicateTriangle  repeated vertex set.
//   - ErrMalformedMesh      inconsistent orientation, disconnection or a broken fan.
package figure
