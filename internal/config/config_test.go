package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.MinFrameSize != DefaultMinFrameSize {
		t.Fatalf("expected min_frame_size %d, got %d", DefaultMinFrameSize, cfg.MinFrameSize)
	}
	if cfg.GuardMinSplit {
		t.Fatalf("splits must be unguarded by default")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Source != SourceDefault {
		t.Fatalf("expected default source, got %q", res.Source)
	}
	if res.Config.ResizeStep != DefaultResizeStep {
		t.Fatalf("expected resize_step %d, got %d", DefaultResizeStep, res.Config.ResizeStep)
	}
}

func TestLoadFromPath_FileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"min_frame_size: 25",
		"guard_min_split: true",
		"canvas:",
		"  width: 1024",
		"  height: 768",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Source != SourceFile {
		t.Fatalf("expected file source, got %q", res.Source)
	}
	cfg := res.Config
	if cfg.MinFrameSize != 25 || !cfg.GuardMinSplit {
		t.Fatalf("expected overlaid values, got min=%d guard=%v", cfg.MinFrameSize, cfg.GuardMinSplit)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 768 {
		t.Fatalf("expected canvas 1024x768, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	// Untouched keys keep their defaults.
	if cfg.ResizeStep != DefaultResizeStep {
		t.Fatalf("expected default resize_step, got %d", cfg.ResizeStep)
	}
}

func TestLoadFromPath_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero min size", "min_frame_size: 0\n"},
		{"canvas below min size", "canvas:\n  width: 40\n  height: 600\n"},
		{"unknown theme", "theme_name: neon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadFromPath(path); err == nil {
				t.Fatalf("expected validation error for %q", tt.yaml)
			}
		})
	}
}

func TestEffectiveTheme_OverridesApplyPerColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = &Theme{ActiveBorder: "#00ff00"}

	theme := cfg.EffectiveTheme()
	if theme.ActiveBorder != "#00ff00" {
		t.Fatalf("expected override applied, got %q", theme.ActiveBorder)
	}
	if theme.Background != "#141432" {
		t.Fatalf("expected base theme background kept, got %q", theme.Background)
	}
}

func TestBuiltinThemeNames_ContainsDefault(t *testing.T) {
	names := BuiltinThemeNames()
	found := false
	for _, name := range names {
		if name == DefaultTheme {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q among builtin themes %v", DefaultTheme, names)
	}
}
