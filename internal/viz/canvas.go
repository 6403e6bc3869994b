package viz

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/synesthetica/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells, each with the color of the last dot
// drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]render.Color
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]render.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]render.Color, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in sub-pixels: (Width*2) x (Height*4).
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	return row, col, col < c.Width && row < c.Height
}

// Set turns on the dot at sub-pixel (x, y).
func (c *Canvas) Set(x, y int) {
	if row, col, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	}
}

// Paint turns on a dot and colors its cell. With additive blending the
// color adds to what the cell already holds.
func (c *Canvas) Paint(x, y int, col render.Color, blend render.Blend) {
	row, cl, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][cl] |= rune(pixelMap[y%4][x%2])
	if blend == render.BlendAdditive {
		prev := c.Colors[row][cl]
		col = render.Color{R: prev.R + col.R*col.A, G: prev.G + col.G*col.A, B: prev.B + col.B*col.A, A: 1}
		col = render.Color{R: min(col.R, 1), G: min(col.G, 1), B: min(col.B, 1), A: 1}
	}
	c.Colors[row][cl] = col
}

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	if row, col, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = render.Color{}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col render.Color, blend render.Blend) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Paint(x0, y0, col, blend)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Lit counts the dots that are on.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for b := r - blank; b != 0; b &= b - 1 {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each run of equally colored cells
// wrapped in a lipgloss foreground style.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j].Hex() == c.Colors[i][start].Hex() {
				continue
			}
			run := string(row[start:j])
			if col := c.Colors[i][start]; col.A > 0 {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex())).Render(run)
			}
			b.WriteString(run)
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Image rasterizes the dots into a paletted frame, charW x charH pixels
// per cell, for GIF capture.
func (c *Canvas) Image(charW, charH int, bg render.Color) *image.Paletted {
	imgW, imgH := c.Width*charW, c.Height*charH
	pal := color.Palette{toRGBA(bg)}
	index := map[string]uint8{bg.Hex(): 0}
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), pal)

	dotW, dotH := max(charW/2, 1), max(charH/4, 1)
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - blank)
			if pattern == 0 {
				continue
			}
			fg := c.Colors[row][col]
			if fg.A == 0 {
				fg = render.White
			}
			idx, ok := index[fg.Hex()]
			if !ok {
				if len(img.Palette) >= 256 {
					idx = uint8(len(img.Palette) - 1)
				} else {
					img.Palette = append(img.Palette, toRGBA(fg))
					idx = uint8(len(img.Palette) - 1)
					index[fg.Hex()] = idx
				}
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					baseX, baseY := col*charW+dx*dotW, row*charH+dy*dotH
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+px, baseY+py, idx)
						}
					}
				}
			}
		}
	}
	return img
}

func toRGBA(c render.Color) color.RGBA {
	r, g, b, _ := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
