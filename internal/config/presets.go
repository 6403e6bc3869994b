package config

// Preset is a named equation in the expression dialect understood by the
// evaluator.
type Preset struct {
	Name     string `yaml:"name" toml:"name"`
	Equation string `yaml:"equation" toml:"equation"`
}

var Presets = []Preset{
	{"Parabola", "a * x^2"},
	{"Sine Wave", "a * sin(b * x + t)"},
	{"Wavy Tan", "a * cos(b*x + t)/tan(x)"},
	{"Interference", "a * (sin(b*x+t) + cos(c*x*0.5))"},
	{"Bessel-like", "a * cos(sqrt(x*x + b*b) - t)"},
	{"Hyperbola", "a / x"},
	{"Damped Cosine", "a * exp(-b*abs(x)) * cos(c*x - t)"},
	{"Moving Sigmoid", "a * (1 / (1 + exp(-b * (x - sin(t)))))"},
	{"Gated Sine", "a * (floor(b*x+t) % 2 != 0 ? 1 : -1) * sin(c*x)"},
	{"Square Wave", "floor(b*x+t) % 2 == 0 ? a : -a"},
	{"Step Function", "x > sin(t) ? a : -a"},
	{"Noise", "(random() - 0.5) * a"},
	{"Chaotic", "a * sin(t) * x * (1-x)"},
	{"Rectifier Pulse", "a * (sin(b*x*t*2) > 0.8 ? 1 : 0)"},
	{"Complex Steps", "a * floor(sin(t)*5*x) / 5"},
	{"Gated Noise", "a * sin(b*x+t) * (random() > 0.5 ? 1 : -1)"},
}

// GetPreset looks a preset up by name, or returns nil.
func GetPreset(name string) *Preset {
	for i := range Presets {
		if Presets[i].Name == name {
			return &Presets[i]
		}
	}
	return nil
}

func ListPresets() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}
