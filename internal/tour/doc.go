// Package tour runs scripted sequences of visualizations through a
// lifecycle manager, optionally persisting each one, and sweeps a slider
// over a range for a single concept.
package tour
