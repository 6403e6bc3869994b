package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth          = 1280
	DefaultHeight         = 800
	DefaultFPS            = 60
	DefaultControlsHeight = 120
	DefaultFunction       = "a * sin(b * x + t)"
	DefaultMode           = "fiber"
	DefaultAlgorithm      = "default"
	DefaultTheme          = "neon"
	DefaultLogLevel       = "info"
)

type Config struct {
	Window    WindowConfig `yaml:"window" toml:"window"`
	DataDir   string       `yaml:"data_dir" toml:"data_dir"`
	LogLevel  string       `yaml:"log_level" toml:"log_level"`
	Seed      uint64       `yaml:"seed" toml:"seed"`
	Theme     string       `yaml:"theme" toml:"theme"`
	Mode      string       `yaml:"mode" toml:"mode"`
	Algorithm string       `yaml:"algorithm" toml:"algorithm"`
	Function  string       `yaml:"function" toml:"function"`
}

type WindowConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`
	// ControlsHeight is the strip reserved for controls at the bottom of
	// the window. Adaptive centering shifts the origin up by half of it.
	ControlsHeight int `yaml:"controls_height" toml:"controls_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:          DefaultWidth,
			Height:         DefaultHeight,
			FPS:            DefaultFPS,
			ControlsHeight: DefaultControlsHeight,
		},
		DataDir:   DefaultDataDir(),
		LogLevel:  DefaultLogLevel,
		Seed:      1,
		Theme:     DefaultTheme,
		Mode:      DefaultMode,
		Algorithm: DefaultAlgorithm,
		Function:  DefaultFunction,
	}
}

// DefaultDataDir is the per-user directory holding the workspace.
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "synesthetica")
	}
	return ".synesthetica"
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML or, for a .toml extension, TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
