// Package tui is the interactive terminal front end.
//
// The left panel holds the unit tabs, the visualization menu and the
// parameter controls for the current unit. The right panel shows an
// orbiting Braille preview of the active visualization above its
// description and governing equation.
package tui
