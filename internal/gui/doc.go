// Package gui runs a mode in a raylib window.
//
// The window shows the canvas with a control bar along the bottom edge.
// Mouse drag rotates, right drag pans, wheel or pinch zooms.
package gui
