// Package geom provides the 3D math shared by the primitive builders and
// field generators.
//
//   - [Vec3]: y-up world vectors with the usual algebra
//   - [Axis], [Lattice3]: regular sample lattices
//   - [UniformSphere]: unbiased random points on the unit sphere
//   - [CatmullRom], [Frames], [Extrude]: smooth curves and tube sweeps
package geom
