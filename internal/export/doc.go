// Package export writes generated scenes out of process: JSON and YAML
// dumps of the primitive list, and SVG drawings of a projected wireframe
// or Braille canvas.
package export
