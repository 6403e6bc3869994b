// Package viz draws frames in the terminal.
//
//   - [Canvas]: braille grid, 2x4 dots per cell, with per-cell color
//   - [Surface]: render.Surface over a Canvas
//   - Themes and lipgloss styles for the HUD around it
//
// Canvas.Image rasterizes the dots for GIF recording.
package viz
