// Package fields holds one generator per concept. A generator turns a
// parameter snapshot into a fresh scene subgraph that encodes a
// closed-form field: direction at each sample, glyph length from a falloff
// law, and the symmetry of the source.
//
// # Dispatch
//
// Generators live in a table indexed by [catalog.ConceptID]; [Lookup]
// resolves one and [Generate] resolves by string id, returning an empty
// subgraph for unknown ids.
//
// # Glyph lengths
//
// Lattice arrows are sized by [Glyph]: min(Scale·Magnitude(r), Cap).
// Lengths saturate at Cap near singular sources and samples that land on
// a source are skipped.
//
// # Conventions
//
// Magnetic directions follow the right-hand rule (see [Circulation]).
// Zero charge is drawn as positive.
package fields
