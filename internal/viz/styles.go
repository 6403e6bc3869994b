package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/synesthetica/internal/render"
)

var (
	// Glass panel effect with subtle border
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusRecording = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(10)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	ActiveParam = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4757"))

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// Header renders a bold title in the current theme with a rule below.
func Header(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(CurrentTheme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(CurrentTheme.Muted).
		Render(title)
}

// GradientText colors each rune along a straight blend from start to end.
func GradientText(text string, start, end render.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := render.Color{
			R: start.R + t*(end.R-start.R),
			G: start.G + t*(end.G-start.G),
			B: start.B + t*(end.B-start.B),
			A: 1,
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// Title renders text as a gradient from the current theme's primary to
// its accent color.
func Title(text string) string {
	return GradientText(text, ThemeColor(CurrentTheme.Primary), ThemeColor(CurrentTheme.Accent))
}

// ThemeColor converts a "#rrggbb" lipgloss color. Anything else, such as
// an ANSI index, maps to white.
func ThemeColor(c lipgloss.Color) render.Color {
	var r, g, b uint8
	if n, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return render.White
	}
	return render.RGB255(float64(r), float64(g), float64(b), 1)
}

// SparklineChart renders a mini sparkline from values. Non-finite values
// draw as gaps.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	rng := hi - lo
	if !(rng > 0) {
		rng = 1
	}

	step := max(len(values)/width, 1)

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			result.WriteRune(' ')
			continue
		}
		norm := (v - lo) / rng
		idx := min(max(int(norm*float64(len(chars)-1)), 0), len(chars)-1)

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(SparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(SparkMid.Render(c))
		default:
			result.WriteString(SparkLow.Render(c))
		}
	}
	return result.String()
}

// ParamBar draws v's position within [lo, hi] as a fixed-width gauge.
func ParamBar(name string, v, lo, hi float64, width int) string {
	ratio := 0.0
	if hi > lo {
		ratio = math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
	}
	filled := int(ratio * float64(width))
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
	return fmt.Sprintf("%-14s %s %.2f", name, bar, v)
}

// Separator draws a muted rule with a center mark.
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return Subtle.Render(left + " ◆ " + right)
}
