// Package gui is the raylib window host. It draws every primitive attached
// to the scene root each frame through an orbit camera, with labels
// projected to screen space over the 3D view.
package gui
