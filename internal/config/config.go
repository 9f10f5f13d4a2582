package config

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultMinFrameSize matches the engine's minimum frame dimension.
	DefaultMinFrameSize = 50

	// DefaultResizeStep is the per-keypress resize delta in canvas units.
	DefaultResizeStep = 10

	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600

	// DefaultTheme is the built-in theme applied when none is named.
	DefaultTheme = "midnight"
)

// Theme holds the colors the renderer uses for frame backgrounds and
// borders. The engine never interprets these; they pass through opaquely
// to the render adapter.
type Theme struct {
	Background   string `yaml:"background"`
	Border       string `yaml:"border"`
	ActiveBorder string `yaml:"active_border"`
}

// builtinThemes are selectable by name via the theme_name key.
var builtinThemes = map[string]Theme{
	// midnight reproduces the classic dark-blue canvas with a bright
	// highlight on the active frame.
	"midnight": {
		Background:   "#141432",
		Border:       "#0000ff",
		ActiveBorder: "#ff8080",
	},
	"slate": {
		Background:   "#1e1e2e",
		Border:       "#585b70",
		ActiveBorder: "#f5c2e7",
	},
	"mono": {
		Background:   "0",
		Border:       "8",
		ActiveBorder: "15",
	},
}

// BuiltinThemeNames returns the selectable theme names, sorted.
func BuiltinThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Canvas sets the headless canvas dimensions used when no terminal
// drives the engine (the mcp serve subcommand).
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the effective frametile configuration.
type Config struct {
	// MinFrameSize is the minimum frame width/height in canvas units.
	MinFrameSize int `yaml:"min_frame_size"`

	// GuardMinSplit rejects splits that would produce a half below
	// MinFrameSize. Off by default: splits are unguarded and may create
	// arbitrarily small tiles.
	GuardMinSplit bool `yaml:"guard_min_split"`

	// ResizeStep is the delta accumulated per arrow press in resize
	// mode, in canvas units.
	ResizeStep int `yaml:"resize_step"`

	// Canvas sizes headless sessions. Interactive sessions take their
	// canvas from the terminal.
	Canvas Canvas `yaml:"canvas"`

	// ThemeName selects a built-in theme; Theme overrides individual
	// colors on top of it.
	ThemeName string `yaml:"theme_name"`
	Theme     *Theme `yaml:"theme,omitempty"`

	// LogFile receives session logs. Empty disables logging in the
	// interactive session, where stdout is the canvas.
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		MinFrameSize: DefaultMinFrameSize,
		ResizeStep:   DefaultResizeStep,
		Canvas: Canvas{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
		},
		ThemeName: DefaultTheme,
	}
}

// EffectiveTheme resolves the named built-in theme with any per-color
// overrides applied.
func (c *Config) EffectiveTheme() Theme {
	theme, ok := builtinThemes[c.ThemeName]
	if !ok {
		theme = builtinThemes[DefaultTheme]
	}
	if c.Theme != nil {
		if c.Theme.Background != "" {
			theme.Background = c.Theme.Background
		}
		if c.Theme.Border != "" {
			theme.Border = c.Theme.Border
		}
		if c.Theme.ActiveBorder != "" {
			theme.ActiveBorder = c.Theme.ActiveBorder
		}
	}
	return theme
}

// Validate checks the configuration for values the engine or the
// adapters cannot work with.
func (c *Config) Validate() error {
	if c.MinFrameSize < 1 {
		return fmt.Errorf("min_frame_size must be >= 1, got %d", c.MinFrameSize)
	}
	if c.ResizeStep < 1 {
		return fmt.Errorf("resize_step must be >= 1, got %d", c.ResizeStep)
	}
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Width < c.MinFrameSize || c.Canvas.Height < c.MinFrameSize {
		return fmt.Errorf(
			"canvas %dx%d is smaller than min_frame_size %d",
			c.Canvas.Width, c.Canvas.Height, c.MinFrameSize,
		)
	}
	if c.ThemeName != "" {
		if _, ok := builtinThemes[c.ThemeName]; !ok {
			return fmt.Errorf(
				"unknown theme %q; available: %s",
				c.ThemeName, strings.Join(BuiltinThemeNames(), ", "),
			)
		}
	}
	return nil
}
