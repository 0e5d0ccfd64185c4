// Package viz renders scenes as Braille line art for the terminal.
//
//   - [Orbit]: damped orbit camera with auto-rotate, advanced by Tick
//   - [Build] and [Render]: outline every primitive under a scene root and
//     project it through a perspective [Camera]
//   - [Canvas]: Braille dot canvas with per-cell colour
//   - [Theme] and [Styles]: lipgloss colour schemes
//
// Hosts call Tick once per frame with the elapsed seconds, then re-render.
package viz
