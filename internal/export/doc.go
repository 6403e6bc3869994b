// Package export writes frames and curves as SVG.
package export
