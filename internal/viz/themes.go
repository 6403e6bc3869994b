package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/synesthetica/internal/render"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// Palette is the mode palette index the theme selects, or -1 to leave
	// it alone.
	Palette int
	// Canvas is the backdrop of recorded frames.
	Canvas render.Color
}

var (
	ThemeNeon = Theme{
		Name:       "neon",
		Primary:    lipgloss.Color("#ff00ff"),
		Secondary:  lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Warning:    lipgloss.Color("#ff8800"),
		Error:      lipgloss.Color("#ff0000"),
		Palette:    3,
		Canvas:     render.RGB255(10, 10, 10, 1),
	}

	ThemePlasma = Theme{
		Name:       "plasma",
		Primary:    lipgloss.Color("#b000ff"),
		Secondary:  lipgloss.Color("#ff4fa0"),
		Accent:     lipgloss.Color("#ffd000"),
		Background: lipgloss.Color("#10001a"),
		Text:       lipgloss.Color("#f5e8ff"),
		Muted:      lipgloss.Color("#6b4c7a"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
		Palette:    0,
		Canvas:     render.RGB255(16, 0, 26, 1),
	}

	ThemeFire = Theme{
		Name:       "fire",
		Primary:    lipgloss.Color("#ff6b00"),
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff2d2d"),
		Background: lipgloss.Color("#1a0800"),
		Text:       lipgloss.Color("#fff5f0"),
		Muted:      lipgloss.Color("#8b5a3c"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff0000"),
		Palette:    1,
		Canvas:     render.RGB255(26, 8, 0, 1),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"),
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff4444"),
		Palette:    2,
		Canvas:     render.RGB255(0, 26, 51, 1),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
		Palette:    -1,
		Canvas:     render.Black,
	}

	// Default theme
	CurrentTheme = ThemeNeon

	Themes = []Theme{
		ThemeNeon,
		ThemePlasma,
		ThemeFire,
		ThemeOcean,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme makes the theme after the current one current and returns it.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
