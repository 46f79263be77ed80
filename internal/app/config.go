package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corey/hue/internal/domain/lexicon"
	"github.com/corey/hue/internal/domain/solver"
)

// Scanner names accepted in config.yaml.
const (
	ScannerAhoCorasick = "ahocorasick"
	ScannerLinear      = "linear"
)

// Colour modes accepted in config.yaml and --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Palette holds the escape sequences the highlighter wraps tokens in. FG and
// BG are indexed by colour.
type Palette struct {
	FG    []string `yaml:"fg"`
	BG    []string `yaml:"bg"`
	Error string   `yaml:"error"`
	Reset string   `yaml:"reset"`
}

// Settings is the YAML-serialized form of .hue/config.yaml. Fields absent
// from the file keep their defaults.
type Settings struct {
	Variant string  `yaml:"variant"`
	Color   string  `yaml:"color"`
	Scanner string  `yaml:"scanner"`
	Palette Palette `yaml:"palette"`
}

// DefaultPalette returns the built-in 256-colour palette: black text on
// white, green, yellow and blue backgrounds.
func DefaultPalette() Palette {
	return Palette{
		FG: []string{
			"\033[38;5;0m",
			"\033[38;5;0m",
			"\033[38;5;0m",
			"\033[38;5;0m",
		},
		BG: []string{
			"\033[48;5;231m",
			"\033[48;5;10m",
			"\033[48;5;11m",
			"\033[48;5;12m",
		},
		Error: "\033[38;5;1m",
		Reset: "\033[0m",
	}
}

// DefaultSettings returns the configuration used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Variant: "A",
		Color:   ColorAuto,
		Scanner: ScannerAhoCorasick,
		Palette: DefaultPalette(),
	}
}

// LoadSettings reads path over the defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every field against its accepted values.
func (s Settings) Validate() error {
	if _, err := solver.ParseVariant(s.Variant); err != nil {
		return fmt.Errorf("variant: %w", err)
	}
	if err := ValidateColorMode(s.Color); err != nil {
		return err
	}
	switch s.Scanner {
	case ScannerAhoCorasick, ScannerLinear:
	default:
		return fmt.Errorf("scanner: unknown scanner %q (want %s or %s)", s.Scanner, ScannerAhoCorasick, ScannerLinear)
	}
	if len(s.Palette.FG) != lexicon.NumColours || len(s.Palette.BG) != lexicon.NumColours {
		return fmt.Errorf("palette: need %d fg and %d bg entries, got %d and %d",
			lexicon.NumColours, lexicon.NumColours, len(s.Palette.FG), len(s.Palette.BG))
	}
	return nil
}

// ValidateColorMode checks a --color / color: value.
func ValidateColorMode(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("color: unknown mode %q (want %s, %s or %s)", mode, ColorAuto, ColorAlways, ColorNever)
}

// Marshal renders the settings as YAML, for `hue config`.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
