// Package primitive builds scene primitives: vector glyphs, labels, curve
// tubes, iso-surfaces and the solid source markers.
//
// # Preconditions
//
// VectorGlyph expects a unit direction and a positive length, and CurveTube
// expects at least two points. Violations panic; generators filter
// degenerate samples with [geom.Vec3.Unit] before calling in.
package primitive
