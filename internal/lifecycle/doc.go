// Package lifecycle owns the single active visualization.
//
// # States
//
// A [Manager] is Empty until Load installs a subgraph tagged [Tag], and
// Active afterwards. Load always clears first, so at most one tagged
// subgraph is attached. Clear disposes before it detaches.
package lifecycle
