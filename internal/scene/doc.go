// Package scene holds the scene data model: primitives, the GPU resource
// handles they own, disposable subgraphs and the persistent root.
//
// # Ownership
//
// A [Subgraph] owns the handles of every primitive added to it. Nesting a
// subgraph with [Subgraph.AddChild] moves the child's handles to the parent,
// so only the outermost subgraph needs to be disposed.
//
// # Devices
//
// Handles are issued by a [Device]. [Tracker] is the in-memory device used by
// every host; it counts live allocations so leaks show up in tests.
package scene
