// Package tui runs a mode full-screen in the terminal with Bubble Tea.
//
// Frames are drawn on a viz.Surface at the configured frame rate. The
// panel beside the canvas plots f(0, t) and lists the active parameters.
// Press ? for key bindings; the mouse rotates, pans and zooms.
package tui
